package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestDecoratorInjectsContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newDecorator(slog.NewJSONHandler(&buf, nil), requestIDExtractor))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-123")
	log.InfoContext(ctx, "handled request")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "handled request", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestDecoratorSkipsMissingContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newDecorator(slog.NewJSONHandler(&buf, nil), requestIDExtractor))

	log.Info("no request scope")

	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, "request_id")
}

func TestDecoratorIgnoresNilExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newDecorator(slog.NewJSONHandler(&buf, nil), nil, requestIDExtractor, nil))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-456")
	require.NotPanics(t, func() { log.InfoContext(ctx, "ok") })

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-456", entry["request_id"])
}

func TestMultiHandlerFansOut(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	log := slog.New(newMultiHandler(
		slog.NewJSONHandler(&first, nil),
		slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	log.Info("routine event")

	assert.Contains(t, first.String(), "routine event")
	assert.Empty(t, second.String(), "info is below the second handler's level")

	first.Reset()
	log.Error("something broke")

	assert.Contains(t, first.String(), "something broke")
	assert.Contains(t, second.String(), "something broke")
}

func TestNewWithSentryEmptyDSNFallsBack(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(SentryConfig{})
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info("stdout only") })
}

func TestNewNopeDiscards(t *testing.T) {
	t.Parallel()

	log := NewNope()
	assert.NotPanics(t, func() { log.Error("dropped") })
}
