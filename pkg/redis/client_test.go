package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := NewClient("invalid://url", "test", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_SetGetBytes(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyExportXLSX(385)
	payload := []byte{0x50, 0x4b, 0x03, 0x04} // zip magic

	require.NoError(t, client.Set(ctx, key, payload, time.Minute))

	got, err := client.GetBytes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestClient_GetBytes_Miss(t *testing.T) {
	_, client := setupTestRedis(t)

	got, err := client.GetBytes(context.Background(), "prod:export:xlsx:999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_Delete(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, client.Delete(ctx, "k"))

	n, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClient_Health(t *testing.T) {
	mr, client := setupTestRedis(t)

	require.NoError(t, client.Health(context.Background()))

	mr.Close()
	assert.Error(t, client.Health(context.Background()))
}
