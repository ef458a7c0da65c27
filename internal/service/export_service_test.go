package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"shltmc-be/internal/deck"
	"shltmc-be/internal/domain"
	"shltmc-be/pkg/logger"
	"shltmc-be/pkg/redis"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func testFakeRepo() *fakeMeetingRepository {
	logs, contacts := serviceLogs()
	return &fakeMeetingRepository{
		meeting: &domain.Meeting{
			ID: 10, Number: 385, ClubID: 1,
			Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		club:     &domain.Club{ID: 1, Name: "SHLTMC"},
		logs:     logs,
		contacts: contacts,
	}
}

func setupCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient("redis://"+mr.Addr(), "development", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(repo *fakeMeetingRepository, cache *redis.Client, instancePath string) ExportService {
	renderer := deck.NewRenderer(instancePath, testLogger())
	return NewExportService(repo, cache, renderer, instancePath, testLogger())
}

func TestGenerateMeetingXLSX(t *testing.T) {
	svc := newTestService(testFakeRepo(), nil, t.TempDir())

	data, err := svc.GenerateMeetingXLSX(context.Background(), 385)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	names := f.GetSheetList()
	assert.Len(t, names, 5)
	assert.Contains(t, names, "Agenda")
}

func TestGenerateMeetingXLSX_UnknownMeeting(t *testing.T) {
	svc := newTestService(testFakeRepo(), nil, t.TempDir())

	data, err := svc.GenerateMeetingXLSX(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGenerateMeetingXLSX_RepositoryError(t *testing.T) {
	repo := testFakeRepo()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo, nil, t.TempDir())

	_, err := svc.GenerateMeetingXLSX(context.Background(), 385)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateMeetingXLSX_ServesFromCache(t *testing.T) {
	cache := setupCache(t)
	repo := testFakeRepo()
	svc := newTestService(repo, cache, t.TempDir())

	first, err := svc.GenerateMeetingXLSX(context.Background(), 385)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A repository outage no longer matters once the bytes are cached.
	repo.err = errors.New("connection refused")
	second, err := svc.GenerateMeetingXLSX(context.Background(), 385)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateMeetingXLSX_CacheMissForOtherMeeting(t *testing.T) {
	cache := setupCache(t)
	repo := testFakeRepo()
	svc := newTestService(repo, cache, t.TempDir())

	_, err := svc.GenerateMeetingXLSX(context.Background(), 385)
	require.NoError(t, err)

	// A different number must not hit the cached entry.
	data, err := svc.GenerateMeetingXLSX(context.Background(), 386)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGenerateMeetingPPTX_TemplateMissing(t *testing.T) {
	svc := newTestService(testFakeRepo(), nil, t.TempDir())

	data, err := svc.GenerateMeetingPPTX(context.Background(), 385)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGenerateMeetingPPTX_UnknownMeeting(t *testing.T) {
	svc := newTestService(testFakeRepo(), nil, t.TempDir())

	data, err := svc.GenerateMeetingPPTX(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, data)
}
