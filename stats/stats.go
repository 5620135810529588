package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"
)

// Outcome classifies the result of one step
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeValue
	OutcomeEmpty
	OutcomeError
)

// RunStats represents the report written after running scenarios
type RunStats struct {
	CountersByOperation map[Operation]*OperationStats `json:"countersByOperation"`
	TotalSteps          int                           `json:"totalSteps"`
	Scenarios           []string                      `json:"scenarios"`
	ErrorRate           float64                       `json:"errorRate"`
	totalErrors         int
	mu                  sync.Mutex
}

// OperationStats represents counters for a specific operation
type OperationStats struct {
	Calls  int `json:"calls"`
	Values int `json:"values"`
	Empty  int `json:"empty"`
	Errors int `json:"errors"`
}

// NewRunStats creates a new RunStats instance with initialized maps
func NewRunStats() *RunStats {
	return &RunStats{
		CountersByOperation: make(map[Operation]*OperationStats),
		TotalSteps:          0,
		Scenarios:           []string{},
	}
}

// AddStep counts one executed step. Safe for concurrent use.
func (rs *RunStats) AddStep(operation Operation, outcome Outcome) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.TotalSteps++

	if _, exists := rs.CountersByOperation[operation]; !exists {
		rs.CountersByOperation[operation] = &OperationStats{}
	}

	counters := rs.CountersByOperation[operation]
	counters.Calls++
	switch outcome {
	case OutcomeValue:
		counters.Values++
	case OutcomeEmpty:
		counters.Empty++
	case OutcomeError:
		counters.Errors++
		rs.totalErrors++
	}
}

// AddScenario records the name of a scenario that ran. Safe for concurrent use.
func (rs *RunStats) AddScenario(name string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.Scenarios = append(rs.Scenarios, name)
}

// Finalize calculates derived fields from accumulated data
func (rs *RunStats) Finalize() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.TotalSteps == 0 {
		rs.ErrorRate = 0
		return
	}
	rate := float64(rs.totalErrors) / float64(rs.TotalSteps)
	rs.ErrorRate = math.Round(rate*1000) / 1000
}

// WriteFile writes the report as indented JSON to path
func (rs *RunStats) WriteFile(path string) error {
	rs.mu.Lock()
	data, err := json.MarshalIndent(rs, "", "  ")
	rs.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to encode stats: %v", err)
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write stats to '%v': %v", path, err)
	}
	return nil
}
