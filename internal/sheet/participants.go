package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

// ParticipantsSheet renders the grouped participant list consumed by
// the attendance dashboard.
type ParticipantsSheet struct{}

func (ParticipantsSheet) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}

	widths := make(widthTracker)
	row := startRow

	headers := []interface{}{"Group", "Name"}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(2, row), header); err != nil {
		return 0, err
	}
	widths.observeRow(headers)
	row++

	p := mctx.Participants
	groups := []struct {
		label   string
		members []string
	}{
		{"Prepared Speakers", p.PreparedSpeakers},
		{"Individual Evaluators", p.IndividualEvaluators},
		{"Table Topics Speakers", p.TableTopicsSpeakers},
	}

	for _, g := range groups {
		for _, name := range g.members {
			values := []interface{}{g.label, name}
			if err := setRow(f, sheet, row, values); err != nil {
				return 0, err
			}
			widths.observeRow(values)
			row++
		}
		if len(g.members) > 0 {
			row++ // blank separator after a non-empty group
		}
	}

	for _, rt := range p.RoleTakers {
		values := []interface{}{"Role Takers", fmt.Sprintf("%s: %s", rt.Role, rt.Name)}
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
