package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStep(t *testing.T) {
	rs := NewRunStats()
	rs.AddStep(OpGetCurrent, OutcomeValue)
	rs.AddStep(OpGetCurrent, OutcomeEmpty)
	rs.AddStep(OpRemoveCurrentNext, OutcomeError)
	rs.AddStep(OpResetCursor, OutcomeDone)
	rs.Finalize()

	assert.Equal(t, 4, rs.TotalSteps)
	assert.Equal(t, &OperationStats{Calls: 2, Values: 1, Empty: 1}, rs.CountersByOperation[OpGetCurrent])
	assert.Equal(t, &OperationStats{Calls: 1, Errors: 1}, rs.CountersByOperation[OpRemoveCurrentNext])
	assert.Equal(t, &OperationStats{Calls: 1}, rs.CountersByOperation[OpResetCursor])
	assert.Equal(t, 0.25, rs.ErrorRate)
}

func TestFinalizeWithoutSteps(t *testing.T) {
	rs := NewRunStats()
	rs.Finalize()
	assert.Zero(t, rs.ErrorRate)
}

func TestAddStepConcurrently(t *testing.T) {
	rs := NewRunStats()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rs.AddStep(OpAdvanceCursor, OutcomeDone)
			}
			rs.AddScenario("worker")
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, rs.TotalSteps)
	assert.Equal(t, 800, rs.CountersByOperation[OpAdvanceCursor].Calls)
	assert.Len(t, rs.Scenarios, 8)
}

func TestWriteFile(t *testing.T) {
	rs := NewRunStats()
	rs.AddScenario("walkthrough")
	rs.AddStep(OpRemoveBeginning, OutcomeValue)
	rs.Finalize()

	outputFile := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, rs.WriteFile(outputFile))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 1, decoded["totalSteps"])
	assert.Equal(t, []interface{}{"walkthrough"}, decoded["scenarios"])
	counters := decoded["countersByOperation"].(map[string]interface{})
	assert.Contains(t, counters, OpRemoveBeginning)
}
