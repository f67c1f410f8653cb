package testutil

import (
	"fmt"
	"sync"
	"time"

	"forumcfg/internal/models"
	"forumcfg/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// ByLevel returns the rendered messages logged at level.
func (m *MockLogger) ByLevel(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e.Message())
		}
	}
	return out
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                   sync.Mutex
	Identities           map[string]int
	Entities             map[string]int
	ConstraintViolations map[string]int
	Stages               []string
	Flushes              int
	FlushErr             error
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Identities:           make(map[string]int),
		Entities:             make(map[string]int),
		ConstraintViolations: make(map[string]int),
	}
}

func (m *MockMetrics) SetIdentities(role string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Identities[role] = count
}

func (m *MockMetrics) SetEntities(kind string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entities[kind] = count
}

func (m *MockMetrics) SetConstraintViolations(field string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConstraintViolations[field] = count
}

func (m *MockMetrics) ObserveStageDuration(stage string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stages = append(m.Stages, stage)
}

func (m *MockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes++
	return m.FlushErr
}

// MockExporter implements interfaces.ExporterInterface and keeps what it was given.
type MockExporter struct {
	mu       sync.Mutex
	Exported []*models.ForumConfig
	Err      error
}

func (m *MockExporter) Export(cfg *models.ForumConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Exported = append(m.Exported, cfg)
	return nil
}
