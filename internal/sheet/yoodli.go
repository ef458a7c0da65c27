package sheet

import (
	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/format"
)

// YoodliLinks pairs every project speaker with their evaluator and the
// Yoodli recording links attached to each session log. The evaluator
// is matched by name: an evaluation log's Session_Title carries the
// evaluated speaker's name.
type YoodliLinks struct{}

func (YoodliLinks) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}

	row := startRow
	if err := f.SetCellValue(sheet, cell(1, row), "3. YOODLI LINKS"); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), header); err != nil {
		return 0, err
	}
	row++

	headers := []interface{}{
		"Meeting Number", "Speaker", "_", "_", "_",
		"Speaker Yoodli", "Evaluator", "Evaluator Yoodli",
	}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	row++

	evaluators := make(map[string]*domain.SessionLog)
	for _, log := range mctx.Logs {
		if format.IsEvaluationType(log.SessionType) && log.SessionTitle != "" {
			evaluators[log.SessionTitle] = log
		}
	}

	for _, log := range mctx.Logs {
		if log.ProjectID == nil {
			continue
		}
		speakerName := ""
		evaluatorName := ""
		evaluatorURL := ""
		var evalLog *domain.SessionLog
		if log.Owner != nil {
			speakerName = guestTagged(log.Owner)
			evalLog = evaluators[log.Owner.Name]
		}
		if evalLog != nil {
			if evalLog.Owner != nil {
				evaluatorName = guestTagged(evalLog.Owner)
			}
			evaluatorURL = evalLog.MediaURL
		}
		values := []interface{}{
			mctx.Meeting.Number,
			speakerName,
			"", "", "",
			log.MediaURL,
			evaluatorName,
			evaluatorURL,
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return 0, err
		}
		row++
	}

	return row + 1, nil
}

// guestTagged appends " (Guest)" to guest names on the Yoodli block.
func guestTagged(c *domain.Contact) string {
	if c.IsGuest() {
		return c.Name + " (Guest)"
	}
	return c.Name
}
