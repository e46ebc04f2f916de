package server

import (
	"sync/atomic"
	"time"
)

// Metrics holds server runtime metrics
type Metrics struct {
	ConnectionsTotal  atomic.Int64
	ActiveConnections atomic.Int64
	RequestsTotal     atomic.Int64
	Errors4xx         atomic.Int64
	Errors5xx         atomic.Int64
	ProtocolErrors    atomic.Int64 // connections dropped on a parse or version error

	// Latency tracking (simplified - use histogram in production)
	TotalLatencyNs atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) ConnOpened() {
	m.ConnectionsTotal.Add(1)
	m.ActiveConnections.Add(1)
}

func (m *Metrics) ConnClosed() {
	m.ActiveConnections.Add(-1)
}

// RecordRequest records a completed request
func (m *Metrics) RecordRequest(statusCode int, duration time.Duration) {
	m.RequestsTotal.Add(1)
	m.TotalLatencyNs.Add(duration.Nanoseconds())

	if statusCode >= 400 && statusCode < 500 {
		m.Errors4xx.Add(1)
	} else if statusCode >= 500 {
		m.Errors5xx.Add(1)
	}
}

// AverageLatency returns average request latency
func (m *Metrics) AverageLatency() time.Duration {
	totalReqs := m.RequestsTotal.Load()
	if totalReqs == 0 {
		return 0
	}

	avgNs := m.TotalLatencyNs.Load() / totalReqs
	return time.Duration(avgNs)
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	ConnectionsTotal  int64
	ActiveConnections int64
	RequestsTotal     int64
	Errors4xx         int64
	Errors5xx         int64
	ProtocolErrors    int64
	AverageLatency    time.Duration
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ConnectionsTotal:  m.ConnectionsTotal.Load(),
		ActiveConnections: m.ActiveConnections.Load(),
		RequestsTotal:     m.RequestsTotal.Load(),
		Errors4xx:         m.Errors4xx.Load(),
		Errors5xx:         m.Errors5xx.Load(),
		ProtocolErrors:    m.ProtocolErrors.Load(),
		AverageLatency:    m.AverageLatency(),
	}
}
