package logger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewWithConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")

	log, err := NewWithConfig(Config{
		Level:          "warn",
		Format:         "json",
		OutputPath:     out,
		ServiceName:    "shop-service",
		ServiceVersion: "test",
		Environment:    "production",
	})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	log.Warn("written to file")
	require.NoError(t, log.Sync())
	assert.FileExists(t, out)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLogLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLogLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, parseLogLevel("bogus"))
}

func TestWithContext_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	WithContext(WithRequestID(context.Background(), "req-1"), base).Info("hello")
	WithContext(context.Background(), base).Info("bare")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), 0.05, "warn")
	ctx := WithRequestID(context.Background(), "req-2")
	sql := func() (string, int64) { return "SELECT 1", 1 }

	gl.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len(), "record not found is not an error")

	gl.Trace(ctx, time.Now(), sql, errors.New("syntax error"))
	gl.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	gl.Trace(ctx, time.Now(), sql, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "gorm query error", entries[0].Message)
	assert.Equal(t, "gorm slow query", entries[1].Message)
	assert.Equal(t, "req-2", entries[1].ContextMap()["request_id"])

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now(), sql, errors.New("ignored"))
	assert.Equal(t, 2, logs.Len())
}

func TestRequestIDInterceptor(t *testing.T) {
	interceptor := RequestIDInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var seen string
	handler := func(ctx context.Context, req any) (any, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	}

	md := metadata.Pairs("x-request-id", "from-client")
	_, err := interceptor(metadata.NewIncomingContext(context.Background(), md), nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "from-client", seen)

	_, err = interceptor(context.Background(), nil, info, handler)
	require.NoError(t, err)
	assert.Len(t, seen, 36)
}
