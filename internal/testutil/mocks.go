package testutil

import (
	"context"
	"sync"
	"time"
	"wellsync/internal/models"
	"wellsync/internal/providers"
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
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were logged at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockSource implements sync.MeasurementSource.
type MockSource struct {
	Token      *models.TokenRecord
	Groups     []models.MeasureGroup
	RequestErr error
	RefreshErr error
	FetchErr   error

	RequestCalls int
	RefreshCalls int
	FetchCalls   int
	LastSince    time.Time
}

func (m *MockSource) RequestToken(_ context.Context, _ string) (*models.TokenRecord, error) {
	m.RequestCalls++
	if m.RequestErr != nil {
		return nil, m.RequestErr
	}
	return m.Token, nil
}

func (m *MockSource) RefreshToken(_ context.Context, _ string) (*models.TokenRecord, error) {
	m.RefreshCalls++
	if m.RefreshErr != nil {
		return nil, m.RefreshErr
	}
	return m.Token, nil
}

func (m *MockSource) GetMeasurements(_ context.Context, _ string, since time.Time) ([]models.MeasureGroup, error) {
	m.FetchCalls++
	m.LastSince = since
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.Groups, nil
}

// MockSink implements sync.WellnessSink and records uploads in order.
type MockSink struct {
	FailDates map[string]error

	Uploaded []string
	Records  []*models.DayRecord
}

func (m *MockSink) UpdateWellness(_ context.Context, rec *models.DayRecord) error {
	if err, ok := m.FailDates[rec.Date]; ok {
		return err
	}
	m.Uploaded = append(m.Uploaded, rec.Date)
	m.Records = append(m.Records, rec)
	return nil
}

// MockTokenStore implements sync.TokenStoreInterface in memory.
type MockTokenStore struct {
	Stored  *models.TokenRecord
	LoadErr error
	SaveErr error

	SaveCalls int
}

func (m *MockTokenStore) Load() (*models.TokenRecord, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Stored, nil
}

func (m *MockTokenStore) Save(rec *models.TokenRecord) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = rec
	return nil
}
