package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PerformanceConfig tunes the builder-style logger
type PerformanceConfig struct {
	MinLogLevel     zapcore.Level
	EnableSampling  bool
	SampleEvery     int
	MaxLogPerSecond int
	EnableRateLimit bool
}

// ProductionConfig samples repeated messages and caps log volume
func ProductionConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.InfoLevel,
		EnableSampling:  true,
		SampleEvery:     10,
		MaxLogPerSecond: 500,
		EnableRateLimit: true,
	}
}

// DevelopmentConfig logs everything
func DevelopmentConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.DebugLevel,
		MaxLogPerSecond: 10000,
	}
}

// OptimizedLogger gates log writes by level and rate before fields are built
type OptimizedLogger struct {
	config      PerformanceConfig
	logger      *zap.Logger
	rateLimiter *RateLimiter
}

// RateLimiter caps the number of log lines per second
type RateLimiter struct {
	maxLogs   int
	current   int
	lastReset time.Time
	mu        sync.Mutex
}

func NewRateLimiter(maxLogs int) *RateLimiter {
	return &RateLimiter{
		maxLogs:   maxLogs,
		lastReset: time.Now(),
	}
}

func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= time.Second {
		rl.current = 0
		rl.lastReset = now
	}

	if rl.current >= rl.maxLogs {
		return false
	}

	rl.current++
	return true
}

// NewOptimizedLogger wraps base with level gating, optional sampling and rate limiting
func NewOptimizedLogger(base *zap.Logger, config PerformanceConfig) *OptimizedLogger {
	if base == nil {
		base = zap.NewNop()
	}

	if config.EnableSampling && config.SampleEvery > 0 {
		base = base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 1, config.SampleEvery)
		}))
	}

	return &OptimizedLogger{
		config:      config,
		logger:      base,
		rateLimiter: NewRateLimiter(config.MaxLogPerSecond),
	}
}

// ShouldLog menentukan apakah log harus ditulis
func (ol *OptimizedLogger) ShouldLog(level zapcore.Level) bool {
	if level < ol.config.MinLogLevel {
		return false
	}

	if ol.config.EnableRateLimit && !ol.rateLimiter.Allow() {
		return false
	}

	return true
}

var (
	optimizedLogger *OptimizedLogger
	optimizedMu     sync.RWMutex
)

// SetOptimizedLogger replaces the global builder logger
func SetOptimizedLogger(ol *OptimizedLogger) {
	optimizedMu.Lock()
	defer optimizedMu.Unlock()
	optimizedLogger = ol
}

// GetOptimizedLogger returns the global builder logger; before initialisation
// it discards everything.
func GetOptimizedLogger() *OptimizedLogger {
	optimizedMu.RLock()
	ol := optimizedLogger
	optimizedMu.RUnlock()

	if ol != nil {
		return ol
	}

	optimizedMu.Lock()
	defer optimizedMu.Unlock()
	if optimizedLogger == nil {
		optimizedLogger = NewOptimizedLogger(zap.NewNop(), DevelopmentConfig())
	}
	return optimizedLogger
}
