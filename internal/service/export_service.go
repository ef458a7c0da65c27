package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"shltmc-be/internal/deck"
	"shltmc-be/internal/repository"
	"shltmc-be/internal/sheet"
	"shltmc-be/pkg/logger"
	"shltmc-be/pkg/redis"
)

type exportService struct {
	repo         repository.MeetingRepository
	redisClient  *redis.Client // nil when caching is disabled
	renderer     *deck.Renderer
	instancePath string
	log          *logger.Logger
}

// NewExportService creates the export service. redisClient may be nil;
// exports then render fresh on every call.
func NewExportService(
	repo repository.MeetingRepository,
	redisClient *redis.Client,
	renderer *deck.Renderer,
	instancePath string,
	log *logger.Logger,
) ExportService {
	return &exportService{
		repo:         repo,
		redisClient:  redisClient,
		renderer:     renderer,
		instancePath: instancePath,
		log:          log,
	}
}

// GenerateMeetingXLSX renders the workbook for a meeting, serving from
// the byte cache when available. Cache failures are logged and the
// export proceeds uncached.
func (s *exportService) GenerateMeetingXLSX(ctx context.Context, meetingNumber int) ([]byte, error) {
	if s.redisClient != nil {
		key := s.redisClient.KeyBuilder.KeyExportXLSX(meetingNumber)
		cached, err := s.redisClient.GetBytes(ctx, key)
		if err != nil {
			s.log.WithError(err).WithField("meeting", meetingNumber).Warn("Export cache read failed")
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	mctx, err := loadMeetingContext(ctx, s.repo, meetingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting %d: %w", meetingNumber, err)
	}
	if mctx == nil {
		s.log.WithField("meeting", meetingNumber).Info("Meeting not found, no workbook generated")
		return nil, nil
	}

	data, err := sheet.BuildWorkbook(mctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook for meeting %d: %w", meetingNumber, err)
	}

	if s.redisClient != nil {
		key := s.redisClient.KeyBuilder.KeyExportXLSX(meetingNumber)
		if err := s.redisClient.Set(ctx, key, data, redis.TTLExportXLSX); err != nil {
			s.log.WithError(err).WithField("meeting", meetingNumber).Warn("Export cache write failed")
		}
	}

	return data, nil
}

// GenerateMeetingPPTX renders the deck from the meeting's template.
// Decks are never cached: the template file can change between calls
// and renders embed freshly cropped avatars.
func (s *exportService) GenerateMeetingPPTX(ctx context.Context, meetingNumber int) ([]byte, error) {
	mctx, err := loadMeetingContext(ctx, s.repo, meetingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting %d: %w", meetingNumber, err)
	}
	if mctx == nil {
		s.log.WithField("meeting", meetingNumber).Info("Meeting not found, no deck generated")
		return nil, nil
	}

	templatePath := s.templatePath(meetingNumber)
	if _, err := os.Stat(templatePath); err != nil {
		s.log.WithError(err).
			WithField("meeting", meetingNumber).
			WithField("template", templatePath).
			Error("Deck template missing")
		return nil, nil
	}

	placeholders := deck.BuildPlaceholders(mctx)

	data, err := s.renderer.Render(templatePath, placeholders)
	if err != nil {
		return nil, fmt.Errorf("failed to render deck for meeting %d: %w", meetingNumber, err)
	}

	return data, nil
}

// templatePath locates the per-meeting deck template under the
// instance directory.
func (s *exportService) templatePath(meetingNumber int) string {
	return filepath.Join(s.instancePath, fmt.Sprintf("SHLTMC_Meeting_%d.pptx", meetingNumber))
}
