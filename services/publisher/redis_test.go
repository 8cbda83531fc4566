package publisher

import (
	"bytes"
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjsage522/courseadvisor/logger"
)

// This test requires a running Redis instance
func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()
	publisher := NewRedisPublisher(ctx, "localhost:6379", 0, "test_catalog", 1, 10)
	defer publisher.Close()

	if err := publisher.Ping(); err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer client.Close()
	client.Del(ctx, "test_catalog:0")

	err := publisher.Publish("CSE", []byte("test_message"))
	require.NoError(t, err)

	messages, err := client.XRange(ctx, "test_catalog:0", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	// The message should be base64 encoded
	assert.Equal(t, "dGVzdF9tZXNzYWdl", messages[0].Values["CSE"])

	for i := 0; i < 15; i++ {
		require.NoError(t, publisher.Publish("CSE", []byte("filler")))
	}
	require.NoError(t, publisher.TrimStreams())

	length, err := client.XLen(ctx, "test_catalog:0").Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, length, int64(10))
}

func TestRedisPublisherLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger.Default = logger.New(&buf)
	defer func() { logger.Default = nil }()

	// nothing listens on port 1
	publisher := NewRedisPublisher(context.Background(), "127.0.0.1:1", 0, "test_catalog", 2, 10)
	defer publisher.Close()

	require.Error(t, publisher.Publish("CSE", []byte("entry")))
	require.Error(t, publisher.TrimStreams())

	out := buf.String()
	assert.Contains(t, out, `"component":"publisher"`)
	assert.Contains(t, out, "XADD failed")
	assert.Contains(t, out, "XTRIM failed")
	assert.Contains(t, out, `"key":"CSE"`)
}
