// Copyright 2022-2026 The Halcyon Authors
// This file is part of the Halcyon library.
//
// The Halcyon library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Halcyon library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Halcyon library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/halcyonchain/halcyon/log"
)

// InstrumentedClassifier wraps a Classifier with counters and timing.
// This enables performance monitoring without touching the core decision
// procedure.
//
// Usage:
//
//	c := vm.NewInstrumentedClassifier(vm.NewClassifier(), true)
//	// Use c wherever a Classifier is expected
//	c.LogStats()
type InstrumentedClassifier struct {
	inner   Classifier
	enabled bool

	// Step metrics
	stepCount  uint64
	stepTimeNs uint64

	// Outcome metrics
	continueCount uint64
	haltCounts    [HaltOutOfGas + 1]uint64

	// Normal-halt metrics
	returnCount uint64
	revertCount uint64
	stopCount   uint64
}

// NewInstrumentedClassifier creates a new instrumented wrapper.
// Set enabled=false in production to minimize overhead.
func NewInstrumentedClassifier(inner Classifier, enabled bool) *InstrumentedClassifier {
	return &InstrumentedClassifier{
		inner:   inner,
		enabled: enabled,
	}
}

func (c *InstrumentedClassifier) Classify(m *MachineState, env *Env) (CostReport, HaltReason) {
	if !c.enabled {
		return c.inner.Classify(m, env)
	}

	start := time.Now()
	report, reason := c.inner.Classify(m, env)
	elapsed := uint64(time.Since(start).Nanoseconds())

	atomic.AddUint64(&c.stepCount, 1)
	atomic.AddUint64(&c.stepTimeNs, elapsed)

	if reason == HaltNone {
		atomic.AddUint64(&c.continueCount, 1)
	} else if int(reason) < len(c.haltCounts) {
		atomic.AddUint64(&c.haltCounts[reason], 1)
		haltCounter(reason).Inc()
	}

	return report, reason
}

func (c *InstrumentedClassifier) NormalHalt(m *MachineState, env *Env) (HaltMode, []byte) {
	if !c.enabled {
		return c.inner.NormalHalt(m, env)
	}

	mode, payload := c.inner.NormalHalt(m, env)
	switch mode {
	case HaltModeReturn:
		atomic.AddUint64(&c.returnCount, 1)
	case HaltModeRevert:
		atomic.AddUint64(&c.revertCount, 1)
	case HaltModeStop:
		atomic.AddUint64(&c.stopCount, 1)
	}
	return mode, payload
}

// haltCounter returns the shared per-reason halt counter.
func haltCounter(reason HaltReason) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`vm_halt_total{reason=%q}`, reason.String()))
}

// ClassifierStats holds accumulated classifier statistics.
type ClassifierStats struct {
	StepCount     uint64
	StepTime      time.Duration
	ContinueCount uint64
	HaltCounts    map[HaltReason]uint64
	ReturnCount   uint64
	RevertCount   uint64
	StopCount     uint64
}

// Stats returns the accumulated statistics.
func (c *InstrumentedClassifier) Stats() ClassifierStats {
	halts := make(map[HaltReason]uint64, len(c.haltCounts))
	for r := HaltInvalidInstruction; r <= HaltOutOfGas; r++ {
		if n := atomic.LoadUint64(&c.haltCounts[r]); n > 0 {
			halts[r] = n
		}
	}
	return ClassifierStats{
		StepCount:     atomic.LoadUint64(&c.stepCount),
		StepTime:      time.Duration(atomic.LoadUint64(&c.stepTimeNs)),
		ContinueCount: atomic.LoadUint64(&c.continueCount),
		HaltCounts:    halts,
		ReturnCount:   atomic.LoadUint64(&c.returnCount),
		RevertCount:   atomic.LoadUint64(&c.revertCount),
		StopCount:     atomic.LoadUint64(&c.stopCount),
	}
}

// LogStats logs the accumulated statistics at debug level.
func (c *InstrumentedClassifier) LogStats() {
	stats := c.Stats()
	log.Debug("classifier stats",
		"steps", stats.StepCount,
		"step_time", stats.StepTime,
		"continues", stats.ContinueCount,
		"halts", stats.TotalHalts(),
		"returns", stats.ReturnCount,
		"reverts", stats.RevertCount,
		"stops", stats.StopCount,
	)
}

// ResetStats clears all counters.
func (c *InstrumentedClassifier) ResetStats() {
	atomic.StoreUint64(&c.stepCount, 0)
	atomic.StoreUint64(&c.stepTimeNs, 0)
	atomic.StoreUint64(&c.continueCount, 0)
	for r := range c.haltCounts {
		atomic.StoreUint64(&c.haltCounts[r], 0)
	}
	atomic.StoreUint64(&c.returnCount, 0)
	atomic.StoreUint64(&c.revertCount, 0)
	atomic.StoreUint64(&c.stopCount, 0)
}

// TotalHalts returns the number of faulted steps.
func (s ClassifierStats) TotalHalts() uint64 {
	var total uint64
	for _, n := range s.HaltCounts {
		total += n
	}
	return total
}

// Inner returns the wrapped classifier.
func (c *InstrumentedClassifier) Inner() Classifier {
	return c.inner
}

// =============================================================================
// Compile-time interface compliance
// =============================================================================

var _ Classifier = (*InstrumentedClassifier)(nil)
