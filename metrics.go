package qsearch

import "sync"

// Metrics counts the work a simulator and its drivers perform. All fields
// are guarded by the mutex; read them through ExportMetrics or Snapshot.
type Metrics struct {
	mu sync.RWMutex

	GateCount    int64
	MeasureCount int64
	Allocations  int64
	Releases     int64

	Attempts        int64
	IterationsRun   int64
	PlacementsFound int64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordGate() {
	m.mu.Lock()
	m.GateCount++
	m.mu.Unlock()
}

func (m *Metrics) recordMeasurement() {
	m.mu.Lock()
	m.MeasureCount++
	m.mu.Unlock()
}

func (m *Metrics) recordAllocation(n int) {
	m.mu.Lock()
	m.Allocations += int64(n)
	m.mu.Unlock()
}

func (m *Metrics) recordRelease(n int) {
	m.mu.Lock()
	m.Releases += int64(n)
	m.mu.Unlock()
}

func (m *Metrics) recordAttempt(iterations int) {
	m.mu.Lock()
	m.Attempts++
	m.IterationsRun += int64(iterations)
	m.mu.Unlock()
}

func (m *Metrics) recordPlacement() {
	m.mu.Lock()
	m.PlacementsFound++
	m.mu.Unlock()
}

// Snapshot returns a race-free copy of the counters.
func (m *Metrics) Snapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Metrics{
		GateCount:       m.GateCount,
		MeasureCount:    m.MeasureCount,
		Allocations:     m.Allocations,
		Releases:        m.Releases,
		Attempts:        m.Attempts,
		IterationsRun:   m.IterationsRun,
		PlacementsFound: m.PlacementsFound,
	}
}

// Add metrics export functionality
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"gate_count":       m.GateCount,
		"measure_count":    m.MeasureCount,
		"allocations":      m.Allocations,
		"releases":         m.Releases,
		"attempts":         m.Attempts,
		"iterations_run":   m.IterationsRun,
		"placements_found": m.PlacementsFound,
	}
}
