package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

// Component is one section renderer sharing a worksheet canvas. It
// appends its rows starting at startRow and returns the first row that
// is safe for the next component, including any separator rows it
// reserves.
type Component interface {
	Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error)
}

// Auto-fit bounds in characters
const (
	autoFitMinWidth = 15
	autoFitMaxWidth = 50
)

// cell converts 1-based coordinates to an A1 reference.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// setRow writes one row of values starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// headerStyle returns the style id used for section titles and column
// header rows.
func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
}

// wrapStyle returns the style id enabling text wrap on a cell.
func wrapStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
}

// widthTracker records, per column, the longest text line seen so a
// component can auto-fit its columns within the (15, 50) bounds.
type widthTracker map[int]int

func (w widthTracker) observe(col int, text string) {
	for _, line := range strings.Split(text, "\n") {
		if n := len([]rune(line)); n > w[col] {
			w[col] = n
		}
	}
}

func (w widthTracker) observeRow(values []interface{}) {
	for i, v := range values {
		if s, ok := v.(string); ok {
			w.observe(i+1, s)
		} else {
			w.observe(i+1, fmt.Sprint(v))
		}
	}
}

// apply sets the tracked column widths, clamped to the auto-fit bounds.
func (w widthTracker) apply(f *excelize.File, sheet string) error {
	for col, width := range w {
		if width < autoFitMinWidth {
			width = autoFitMinWidth
		}
		if width > autoFitMaxWidth {
			width = autoFitMaxWidth
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}
	return nil
}
