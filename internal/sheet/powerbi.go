package sheet

import (
	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/format"
)

// PowerBIAgenda renders the machine-consumed agenda block. Section
// dividers and hidden logs are skipped outright and no separator rows
// are inserted; downstream dashboards expect a dense table.
type PowerBIAgenda struct{}

func (PowerBIAgenda) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}

	row := startRow
	if err := f.SetCellValue(sheet, cell(1, row), "2. MEETING AGENDA"); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), header); err != nil {
		return 0, err
	}
	row++

	headers := []interface{}{"Meeting Number", "Start Time", "Title", "Duration", "Owner"}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	row++

	for _, log := range mctx.Logs {
		if log.IsHidden() || (log.SessionType != nil && log.SessionType.IsSection) {
			continue
		}
		values := []interface{}{
			mctx.Meeting.Number,
			log.StartClock(),
			format.Title(log, mctx.SpeechDetails),
			format.DurationBracket(log.DurationMin, log.DurationMax),
			format.PrimaryOwner(log),
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return 0, err
		}
		row++
	}

	return row + 1, nil
}
