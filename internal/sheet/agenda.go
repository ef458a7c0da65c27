package sheet

import (
	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/format"
)

// Agenda renders the printable running order: title, column headers,
// one row per visible session log in meeting order, with a blank line
// before every section divider.
type Agenda struct{}

func (Agenda) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}
	wrap, err := wrapStyle(f)
	if err != nil {
		return 0, err
	}

	widths := make(widthTracker)
	row := startRow

	if err := f.SetCellValue(sheet, cell(1, row), "AGENDA"); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), header); err != nil {
		return 0, err
	}
	row += 2 // one blank row under the title

	headers := []interface{}{"Start", "Title", "Owner", "Duration"}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(4, row), header); err != nil {
		return 0, err
	}
	widths.observeRow(headers)
	row++

	for _, log := range mctx.VisibleLogs() {
		if log.SessionType != nil && log.SessionType.IsSection {
			row++ // blank line introducing the section
		}

		title := format.Title(log, mctx.SpeechDetails)
		values := []interface{}{
			log.StartClock(),
			title,
			format.Owner(log),
			format.Duration(log.DurationMin, log.DurationMax),
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return 0, err
		}
		if len([]rune(title)) > autoFitMaxWidth {
			if err := f.SetCellStyle(sheet, cell(2, row), cell(2, row), wrap); err != nil {
				return 0, err
			}
		}
		widths.observeRow(values)
		row++
	}

	if err := widths.apply(f, sheet); err != nil {
		return 0, err
	}

	return row + 2, nil // row-1 is the last written row; reserve 3 blanks
}
