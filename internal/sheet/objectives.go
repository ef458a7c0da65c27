package sheet

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/format"
)

// SpeechObjectives renders the project objectives block under the
// agenda: every visible project speech with a known purpose, ordered
// by project code. Single column; deliberately no auto-fit so it does
// not fight the agenda's column widths.
type SpeechObjectives struct{}

func (SpeechObjectives) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}

	row := startRow + 1 // leading blank
	if err := f.SetCellValue(sheet, cell(1, row), "PROJECT OBJECTIVES"); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), header); err != nil {
		return 0, err
	}
	row += 2

	type entry struct {
		detail *domain.SpeechDetail
	}
	var entries []entry
	for _, log := range mctx.VisibleLogs() {
		if log.SessionType == nil || !log.SessionType.ValidForProject || log.ProjectID == nil {
			continue
		}
		d := mctx.SpeechDetails[log.ID]
		if d == nil || d.ProjectPurpose == "" {
			continue
		}
		entries = append(entries, entry{detail: d})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return format.CodeLess(entries[i].detail.ProjectCode, entries[j].detail.ProjectCode)
	})

	for _, e := range entries {
		d := e.detail
		heading := fmt.Sprintf("%s (%s) %s (%s) %s",
			d.PathwayName, d.ProjectCode, d.ProjectName,
			d.ProjectTypeLabel(),
			format.DurationBracketInts(d.DurationMin, d.DurationMax))
		if err := f.SetCellValue(sheet, cell(1, row), heading); err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheet, cell(1, row+1), d.ProjectPurpose); err != nil {
			return 0, err
		}
		row += 3 // two lines plus a blank separator
	}

	return row, nil
}
