package dispatcher

import (
	"sort"

	"github.com/dshills/mote/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	actionMetrics map[string]*ActionMetrics

	totalDispatches uint64
	totalNoOps      uint64
	totalEdits      uint64
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	NoOpCount     uint64
	LastStatus    handler.ResultStatus
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records a dispatch event.
func (m *Metrics) RecordDispatch(actionName string, result handler.Result) {
	m.totalDispatches++
	if result.IsNoOp() {
		m.totalNoOps++
	}
	if result.Edited {
		m.totalEdits++
	}

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actionMetrics[actionName] = am
	}
	am.DispatchCount++
	am.LastStatus = result.Status
	if result.IsNoOp() {
		am.NoOpCount++
	}
}

// TotalDispatches returns the number of dispatched actions.
func (m *Metrics) TotalDispatches() uint64 {
	return m.totalDispatches
}

// TotalNoOps returns the number of actions that had no effect.
func (m *Metrics) TotalNoOps() uint64 {
	return m.totalNoOps
}

// TotalEdits returns the number of actions that changed buffer content.
func (m *Metrics) TotalEdits() uint64 {
	return m.totalEdits
}

// Action returns the metrics for one action name, or nil if never dispatched.
func (m *Metrics) Action(name string) *ActionMetrics {
	am := m.actionMetrics[name]
	if am == nil {
		return nil
	}
	cp := *am
	return &cp
}

// TopActions returns up to n actions ordered by dispatch count, then name.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	out := make([]ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		out = append(out, *am)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Reset clears all collected statistics.
func (m *Metrics) Reset() {
	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalNoOps = 0
	m.totalEdits = 0
}
