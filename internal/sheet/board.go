package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

// Board is an ordered composition of components rendered onto a single
// named sheet, threading the current row from one component to the
// next.
type Board struct {
	Title      string
	Components []Component
}

// Render runs the board's components in order on its sheet.
func (b Board) Render(f *excelize.File, mctx *domain.MeetingContext) error {
	row := 1
	for _, c := range b.Components {
		next, err := c.Render(f, b.Title, mctx, row)
		if err != nil {
			return fmt.Errorf("board %q: %w", b.Title, err)
		}
		row = next
	}
	return nil
}

// Boards returns the fixed board composition of the meeting export, in
// sheet order.
func Boards() []Board {
	return []Board{
		{Title: "Agenda", Components: []Component{Agenda{}, SpeechObjectives{}}},
		{Title: "PowerBI Data", Components: []Component{MeetingMaster{}, PowerBIAgenda{}, YoodliLinks{}}},
		{Title: "Roster", Components: []Component{Roster{}}},
		{Title: "Participants", Components: []Component{ParticipantsSheet{}}},
		{Title: "Votes", Components: []Component{VotesSheet{}}},
	}
}
