package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks session timing: frames drawn and keys handled.
// Counters are atomic so a snapshot can be taken from any goroutine.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Key handling (resolve + dispatch)
	inputCount      atomic.Uint64
	inputTotalNs    atomic.Int64
	inputUnresolved atomic.Uint64

	resizeCount atomic.Uint64

	startTime time.Time
}

// noFrame marks the minimum frame time before the first frame.
const noFrame = 1<<63 - 1

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	m.frameMinNs.Store(noFrame)
	return m
}

// RecordFrame records the time taken to draw and flush one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	storeIf(&m.frameMinNs, ns, func(old int64) bool { return ns < old })
	storeIf(&m.frameMaxNs, ns, func(old int64) bool { return ns > old })
}

// storeIf replaces v with ns while better reports an improvement.
func storeIf(v *atomic.Int64, ns int64, better func(old int64) bool) {
	for {
		old := v.Load()
		if !better(old) || v.CompareAndSwap(old, ns) {
			return
		}
	}
}

// RecordInput records the time taken to resolve and dispatch one key.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// RecordUnresolved records a key that mapped to no action.
func (m *Metrics) RecordUnresolved() {
	m.inputUnresolved.Add(1)
}

// RecordResize records a terminal resize.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	inputCount := m.inputCount.Load()

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == noFrame {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:          time.Since(m.startTime),
		FrameCount:      frameCount,
		AvgFrameTimeNs:  mean(m.frameTotalNs.Load(), frameCount),
		MinFrameTimeNs:  minFrameNs,
		MaxFrameTimeNs:  m.frameMaxNs.Load(),
		LastFrameNs:     m.lastFrameNs.Load(),
		InputCount:      inputCount,
		AvgInputTimeNs:  mean(m.inputTotalNs.Load(), inputCount),
		InputUnresolved: m.inputUnresolved.Load(),
		ResizeCount:     m.resizeCount.Load(),
	}
}

func mean(totalNs int64, n uint64) int64 {
	if n == 0 {
		return 0
	}
	return totalNs / int64(n)
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.frameCount.Store(0)
	m.frameTotalNs.Store(0)
	m.frameMinNs.Store(noFrame)
	m.frameMaxNs.Store(0)
	m.lastFrameNs.Store(0)
	m.inputCount.Store(0)
	m.inputTotalNs.Store(0)
	m.inputUnresolved.Store(0)
	m.resizeCount.Store(0)
	m.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime          time.Duration
	FrameCount      uint64
	AvgFrameTimeNs  int64
	MinFrameTimeNs  int64
	MaxFrameTimeNs  int64
	LastFrameNs     int64
	InputCount      uint64
	AvgInputTimeNs  int64
	InputUnresolved uint64
	ResizeCount     uint64
}

// AvgFrameTime returns the mean frame duration.
func (s MetricsSnapshot) AvgFrameTime() time.Duration {
	return time.Duration(s.AvgFrameTimeNs)
}

// AvgInputTime returns the mean key handling duration.
func (s MetricsSnapshot) AvgInputTime() time.Duration {
	return time.Duration(s.AvgInputTimeNs)
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":     s.Uptime.Round(time.Millisecond),
		"frames":     s.FrameCount,
		"frame_avg":  s.AvgFrameTime(),
		"frame_max":  time.Duration(s.MaxFrameTimeNs),
		"keys":       s.InputCount,
		"key_avg":    s.AvgInputTime(),
		"unresolved": s.InputUnresolved,
		"resizes":    s.ResizeCount,
	}
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}
