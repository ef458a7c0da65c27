package sheet

import (
	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/format"
)

// MeetingMaster renders the one-row denormalized meeting record that
// heads the PowerBI data sheet.
type MeetingMaster struct{}

func (MeetingMaster) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}

	row := startRow
	if err := f.SetCellValue(sheet, cell(1, row), "1. MEETING MASTER"); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(1, row), header); err != nil {
		return 0, err
	}
	row++

	headers := []interface{}{
		"Excomm", "Date", "Meeting Number", "Title", "Keynote Speaker",
		"Media", "Word of the Day",
		"Best Speaker", "Best Evaluator", "Best Table Topic", "Best Role Taker",
	}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	row++

	m := mctx.Meeting
	values := []interface{}{
		mctx.ExComm.Display(),
		m.Date.Format("2006/01/02"),
		m.Number,
		m.Title,
		keynoteSpeakerName(mctx),
		m.MediaURL,
		m.WordOfDay,
		awardName(mctx.BestAwards.Speaker),
		awardName(mctx.BestAwards.Evaluator),
		awardName(mctx.BestAwards.TableTopic),
		awardName(mctx.BestAwards.RoleTaker),
	}
	if err := setRow(f, sheet, row, values); err != nil {
		return 0, err
	}

	return row + 2, nil
}

// keynoteSpeakerName returns the owner of the first keynote log that
// has one, or empty.
func keynoteSpeakerName(mctx *domain.MeetingContext) string {
	for _, log := range mctx.Logs {
		if format.IsKeynoteType(log.SessionType) && log.Owner != nil {
			return log.Owner.Name
		}
	}
	return ""
}

func awardName(c *domain.Contact) string {
	if c == nil {
		return ""
	}
	return c.Name
}
