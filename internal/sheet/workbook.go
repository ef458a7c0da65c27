package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

// BuildWorkbook renders every board into a fresh workbook and
// serializes it to a byte buffer. The default sheet a new workbook
// starts with is renamed for board 0 so the file carries no stray
// leading sheet.
func BuildWorkbook(mctx *domain.MeetingContext) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	boards := Boards()

	if err := f.SetSheetName("Sheet1", boards[0].Title); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, b := range boards[1:] {
		if _, err := f.NewSheet(b.Title); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", b.Title, err)
		}
	}

	for _, b := range boards {
		if err := b.Render(f, mctx); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
