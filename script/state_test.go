package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cursorlist/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, code string) (string, *stats.RunStats, error) {
	t.Helper()
	var out bytes.Buffer
	rs := stats.NewRunStats()
	state := NewState(&out, rs)
	defer state.Close()
	err := state.DoString(code)
	return out.String(), rs, err
}

func TestWalkthroughScript(t *testing.T) {
	output, rs, err := runScript(t, `
		local l = list.new()
		print(l:render())
		l:insert_beginning(25)
		l:insert_beginning(37)
		print(l:render())
		l:advance()
		print("current", l:current())
		l:insert_current_next(32)
		l:advance()
		l:reset()
		l:insert_current_next(28)
		print(l:render())
		print("removed", l:remove_beginning())
		print("removed", l:remove_current_next())
		print(l:render(), l:len())
	`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, []string{
		"Empty Linked List",
		"37 25 Current: 25",
		"current\t37",
		"37 28 32 25 Current: 37",
		"removed\t37",
		"removed\t32",
		"28 25 Current: 28\t2",
	}, lines)
	assert.Equal(t, 2, rs.CountersByOperation[stats.OpInsertBeginning].Calls)
	assert.Equal(t, 1, rs.CountersByOperation[stats.OpRemoveCurrentNext].Values)
}

func TestScriptErrorsAreReturnedNotRaised(t *testing.T) {
	output, rs, err := runScript(t, `
		local empty = list.new()
		local ok, msg = empty:advance()
		print(ok, msg)
		print(empty:current(), empty:remove_beginning(), empty:remove_current_next())

		local single = list.new("solo")
		local v, err = single:remove_current_next()
		print(v, err)
	`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, []string{
		"nil\tcannot advance cursor of an empty list",
		"nil\tnil\tnil",
		"nil\tcursor has no successor to remove",
	}, lines)
	assert.Equal(t, 1, rs.CountersByOperation[stats.OpAdvanceCursor].Errors)
	assert.Equal(t, 1, rs.CountersByOperation[stats.OpRemoveCurrentNext].Errors)
	assert.Equal(t, 1, rs.CountersByOperation[stats.OpRemoveCurrentNext].Empty)
}

func TestValuesAndTostring(t *testing.T) {
	output, _, err := runScript(t, `
		local l = list.new(3)
		l:insert_beginning("two")
		l:insert_beginning(1)
		print(table.concat(l:values(), ","))
		print(tostring(l))
	`)
	require.NoError(t, err)
	assert.Equal(t, "1,two,3\n1 two 3 Current: 3\n", output)
}

func TestInsertNilIsAnError(t *testing.T) {
	_, _, err := runScript(t, `list.new():insert_beginning(nil)`)
	assert.Error(t, err)
}

func TestUnsafeLibrariesAreMissing(t *testing.T) {
	_, _, err := runScript(t, `os.exit(1)`)
	assert.Error(t, err)
	_, _, err = runScript(t, `dofile("/etc/passwd")`)
	assert.Error(t, err)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.lua")
	require.NoError(t, os.WriteFile(path, []byte(`print(list.new(5):render())`), 0644))

	var out bytes.Buffer
	require.NoError(t, RunFile(path, &out, nil))
	assert.Equal(t, "5 Current: 5\n", out.String())
}

func TestClosedState(t *testing.T) {
	state := NewState(&bytes.Buffer{}, nil)
	state.Close()
	state.Close()
	assert.ErrorIs(t, state.DoString(`x = 1`), ErrStateClosed)
}
