package options

import (
	"os"
	"path/filepath"
	"testing"

	"cursorlist/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitListFlag(t *testing.T) {
	assert.Equal(t, []string{}, splitListFlag(""))
	assert.Equal(t, []string{"scenario-*"}, splitListFlag("scenario-*"))
	assert.Equal(t, []string{"a", "b*"}, splitListFlag(" a, ,b* "))
}

func TestValidateCreatesStatsDirectory(t *testing.T) {
	statsPath := filepath.Join(t.TempDir(), "nested", "out", "stats.json")
	opts := &Options{Workers: 1, StatsPath: statsPath}
	require.NoError(t, opts.Validate())

	info, err := os.Stat(filepath.Dir(statsPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestValidateRejectsStatsUnderFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	opts := &Options{Workers: 1, StatsPath: filepath.Join(file, "stats.json")}
	err := opts.Validate()
	require.Error(t, err)
	assert.Equal(t, util.ERROR_BAD_OUTPUT_PATH, util.StatusCodeOf(err, 1))
}

func TestValidateMissingLuaScript(t *testing.T) {
	opts := &Options{Workers: 1, LuaScriptPath: filepath.Join(t.TempDir(), "missing.lua")}
	err := opts.Validate()
	require.Error(t, err)
	assert.Equal(t, util.ERROR_SCRIPT_FAILED, util.StatusCodeOf(err, 1))
}

func TestValidateSeedWithoutSteps(t *testing.T) {
	seed := 3
	opts := &Options{Workers: 1, Seed: &seed}
	err := opts.Validate()
	require.Error(t, err)
	assert.Equal(t, util.ERROR_BAD_STEP, util.StatusCodeOf(err, 1))
}

func TestValidateWorkers(t *testing.T) {
	opts := &Options{Workers: 0}
	err := opts.Validate()
	require.Error(t, err)
	assert.Equal(t, 1, util.StatusCodeOf(err, 1))
}
