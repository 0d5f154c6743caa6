package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents health check status
type Status int

const (
	StatusUnknown Status = iota
	StatusHealthy
	StatusUnhealthy
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "HEALTHY"
	case StatusUnhealthy:
		return "UNHEALTHY"
	default:
		return "UNKNOWN"
	}
}

// CheckResult represents the result of a health check
type CheckResult struct {
	Name         string
	Status       Status
	Latency      time.Duration
	LastCheck    time.Time
	LastError    error
	CheckCount   int
	FailureCount int
}

// Checker interface for health checks
type Checker interface {
	Check(ctx context.Context) CheckResult
}

// ProbeFunc reports a dependency as reachable by returning nil.
type ProbeFunc func(ctx context.Context) error

// ProbeChecker adapts a ProbeFunc, such as a database or Redis ping, to Checker.
type ProbeChecker struct {
	Name  string
	Probe ProbeFunc
}

// Check runs the probe and times it
func (c *ProbeChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{
		Name:      c.Name,
		LastCheck: start,
	}

	err := c.Probe(ctx)
	result.Latency = time.Since(start)
	if err != nil {
		result.Status = StatusUnhealthy
		result.LastError = err
		return result
	}

	result.Status = StatusHealthy
	return result
}

// Monitor probes registered dependencies in the background
type Monitor struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	results  map[string]*CheckResult
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	onChange func(name string, status Status)
	ctx      context.Context
	cancel   context.CancelFunc
	running  bool
}

// NewMonitor creates a new health monitor. onChange, if set, is called after
// every check whose status differs from the previous one.
func NewMonitor(interval time.Duration, logger *zap.Logger, onChange func(name string, status Status)) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Monitor{
		checkers: make(map[string]Checker),
		results:  make(map[string]*CheckResult),
		interval: interval,
		timeout:  5 * time.Second,
		logger:   logger,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Register adds a probe under name, replacing any previous one
func (m *Monitor) Register(name string, probe ProbeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkers[name] = &ProbeChecker{Name: name, Probe: probe}

	m.logger.Info("Registered health checker", zap.String("name", name))
}

// Start starts the health monitor
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	go m.runChecks()
}

// Stop stops the health monitor
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	m.running = false
	m.cancel()
}

func (m *Monitor) runChecks() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.checkAll()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.checkAll()
		}
	}
}

func (m *Monitor) checkAll() {
	m.mu.RLock()
	checkers := make(map[string]Checker, len(m.checkers))
	for name, checker := range m.checkers {
		checkers[name] = checker
	}
	m.mu.RUnlock()

	for name, checker := range checkers {
		ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
		result := checker.Check(ctx)
		cancel()

		m.mu.Lock()
		previous := StatusUnknown
		if existing, ok := m.results[name]; ok {
			previous = existing.Status
			result.CheckCount = existing.CheckCount + 1
			result.FailureCount = existing.FailureCount
		} else {
			result.CheckCount = 1
		}
		if result.Status == StatusUnhealthy {
			result.FailureCount++
		}
		m.results[name] = &result
		m.mu.Unlock()

		if result.Status != StatusHealthy {
			m.logger.Warn("Health check failed",
				zap.String("name", name),
				zap.String("status", result.Status.String()),
				zap.Duration("latency", result.Latency),
				zap.Error(result.LastError),
			)
		}

		if result.Status != previous {
			if previous != StatusUnknown {
				m.logger.Info("Dependency status changed",
					zap.String("name", name),
					zap.String("from", previous.String()),
					zap.String("to", result.Status.String()),
				)
			}
			if m.onChange != nil {
				m.onChange(name, result.Status)
			}
		}
	}
}

// IsHealthy reports whether name passed its last check. Untracked names
// are assumed healthy.
func (m *Monitor) IsHealthy(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if result, ok := m.results[name]; ok {
		return result.Status == StatusHealthy
	}
	return true
}

// GetResult gets the last check result for name
func (m *Monitor) GetResult(name string) (*CheckResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result, exists := m.results[name]
	if !exists {
		return nil, false
	}
	resultCopy := *result
	return &resultCopy, true
}

// GetAllResults returns all health check results
func (m *Monitor) GetAllResults() map[string]*CheckResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make(map[string]*CheckResult, len(m.results))
	for name, result := range m.results {
		resultCopy := *result
		results[name] = &resultCopy
	}
	return results
}
