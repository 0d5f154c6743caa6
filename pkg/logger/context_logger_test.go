package logger

import (
	"context"
	"errors"
	"testing"

	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T, cfg PerformanceConfig) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := GetOptimizedLogger()
	SetOptimizedLogger(NewOptimizedLogger(zap.New(core), cfg))
	t.Cleanup(func() { SetOptimizedLogger(previous) })
	return logs
}

func TestContextLogBuilder_ExtractsContextFields(t *testing.T) {
	logs := observed(t, DevelopmentConfig())

	ctx := ctxutil.NewContextWithRequest(context.Background(), "req-42", "127.0.0.1", "go-test", "service", "Query")
	InfoWithContext(ctx, "Query completed").
		Int("total", 7).
		Err(errors.New("ignored? no")).
		Log()

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-42" {
		t.Errorf("Expected request_id field, got %v", fields["request_id"])
	}
	if fields["function"] != "Query" || fields["module"] != "service" {
		t.Errorf("Expected module/function fields, got %v/%v", fields["module"], fields["function"])
	}
	if fields["total"] != int64(7) {
		t.Errorf("Expected total=7, got %v", fields["total"])
	}
}

func TestContextLogBuilder_RespectsMinLevel(t *testing.T) {
	cfg := DevelopmentConfig()
	cfg.MinLogLevel = zapcore.WarnLevel
	logs := observed(t, cfg)

	DebugWithContext(context.Background(), "debug").String("k", "v").Log()
	InfoWithContext(context.Background(), "info").Log()
	WarnWithContext(context.Background(), "warn").Log()

	if logs.Len() != 1 {
		t.Fatalf("Expected only the warning to be logged, got %d entries", logs.Len())
	}
	if logs.All()[0].Message != "warn" {
		t.Errorf("Unexpected message %q", logs.All()[0].Message)
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2)
	if !rl.Allow() || !rl.Allow() {
		t.Fatal("Expected first two logs to be allowed")
	}
	if rl.Allow() {
		t.Error("Expected third log within the same second to be rejected")
	}
}

func TestGetLogger_NopBeforeInit(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic.
	GetLogger().Info("discarded")
	LogRequest("GET", "/", 200, 1, "127.0.0.1", "test")
}
