package sheet

import (
	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

// Roster renders the sign-up list for the meeting, ordered by the
// roster order number.
type Roster struct{}

func (Roster) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}

	widths := make(widthTracker)
	row := startRow

	headers := []interface{}{"Order", "Name", "Ticket"}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(3, row), header); err != nil {
		return 0, err
	}
	widths.observeRow(headers)
	row++

	for _, entry := range mctx.Roster {
		name := ""
		if entry.Contact != nil {
			name = entry.Contact.Name
		}
		values := []interface{}{entry.OrderNumber, name, entry.TicketName}
		if err := setRow(f, sheet, row, values); err != nil {
			return 0, err
		}
		widths.observeRow(values)
		row++
	}

	if err := widths.apply(f, sheet); err != nil {
		return 0, err
	}

	return row + 1, nil
}
