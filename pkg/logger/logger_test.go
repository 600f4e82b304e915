package logger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	log = nil
	once = sync.Once{}
	t.Cleanup(func() {
		log = nil
		once = sync.Once{}
	})
}

func TestGetLogger_NopBeforeInit(t *testing.T) {
	resetLogger(t)

	require.NotNil(t, GetLogger())
	// must not panic on an uninitialised logger
	Info(context.Background(), "ignored")
	Error(nil, "ignored")
}

func TestInitAndContextLogging(t *testing.T) {
	resetLogger(t)
	Init("development")
	require.NotNil(t, GetLogger())

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")
	require.NotNil(t, WithContext(ctx))

	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/health", 200, 10*time.Millisecond, "127.0.0.1")
}

func TestWithContextTypedRequestID(t *testing.T) {
	resetLogger(t)
	Init("development")
	ctx := context.WithValue(context.Background(), RequestIDKey, "typed-req-id")
	require.NotNil(t, WithContext(ctx))
}

func TestInit_ProductionIsIdempotent(t *testing.T) {
	resetLogger(t)

	Init("production")
	first := GetLogger()
	Init("development")
	require.Same(t, first, GetLogger())
	Sync()
}
