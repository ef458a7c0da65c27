package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"shltmc-be/internal/service"
	"shltmc-be/pkg/errors"
	"shltmc-be/pkg/logger"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// ExportHandler serves the meeting export downloads
type ExportHandler struct {
	exportService service.ExportService
	logger        *logger.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportService, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// MeetingXLSX handles GET /api/meetings/{number}/export.xlsx
func (h *ExportHandler) MeetingXLSX(w http.ResponseWriter, r *http.Request) {
	number, ok := h.meetingNumber(w, r)
	if !ok {
		return
	}

	data, err := h.exportService.GenerateMeetingXLSX(r.Context(), number)
	if err != nil {
		h.logger.WithError(err).WithField("meeting", number).Error("Workbook export failed")
		h.writeError(w, errors.NewInternalError("Failed to generate workbook", err))
		return
	}
	if data == nil {
		h.writeError(w, errors.NewNotFoundError(fmt.Sprintf("Meeting %d not found", number)))
		return
	}

	h.writeAttachment(w, data, xlsxContentType, fmt.Sprintf("SHLTMC_Meeting_%d.xlsx", number))
}

// MeetingPPTX handles GET /api/meetings/{number}/export.pptx
func (h *ExportHandler) MeetingPPTX(w http.ResponseWriter, r *http.Request) {
	number, ok := h.meetingNumber(w, r)
	if !ok {
		return
	}

	data, err := h.exportService.GenerateMeetingPPTX(r.Context(), number)
	if err != nil {
		h.logger.WithError(err).WithField("meeting", number).Error("Deck export failed")
		h.writeError(w, errors.NewInternalError("Failed to generate deck", err))
		return
	}
	if data == nil {
		h.writeError(w, errors.NewNotFoundError(fmt.Sprintf("Meeting %d not found or deck template missing", number)))
		return
	}

	h.writeAttachment(w, data, pptxContentType, fmt.Sprintf("SHLTMC_Meeting_%d.pptx", number))
}

// meetingNumber parses the {number} route parameter, writing a
// validation error when it is not a positive integer.
func (h *ExportHandler) meetingNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		h.writeError(w, errors.NewValidationError("Meeting number must be a positive integer",
			map[string]interface{}{"number": raw}))
		return 0, false
	}
	return number, true
}

func (h *ExportHandler) writeAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.WithError(err).Error("Failed to write export response")
	}
}

func (h *ExportHandler) writeError(w http.ResponseWriter, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	response := &errors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.WithError(err).Error("Failed to encode error response")
	}
}
