package service

import "context"

// ExportService generates the two meeting export documents. Both
// methods return (nil, nil) when the meeting number does not exist.
type ExportService interface {
	// GenerateMeetingXLSX renders the five-sheet workbook for a meeting
	GenerateMeetingXLSX(ctx context.Context, meetingNumber int) ([]byte, error)

	// GenerateMeetingPPTX renders the deck from the meeting's template
	GenerateMeetingPPTX(ctx context.Context, meetingNumber int) ([]byte, error)
}
