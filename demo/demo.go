package demo

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"cursorlist/list"
	"cursorlist/options"
	"cursorlist/parallel"
	"cursorlist/script"
	"cursorlist/stats"
	"cursorlist/util"

	"github.com/gobwas/glob"
)

const inlineScenarioName = "inline"

type scenarioRunner struct {
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	opts            *options.Options
	stats           *stats.RunStats
}

type scenarioResult struct {
	output bytes.Buffer
	err    error
}

// Run executes the scenarios selected by opts and writes their output to out
// in catalog order.
func Run(opts *options.Options, out io.Writer) (err error) {

	runner := &scenarioRunner{
		opts:  opts,
		stats: stats.NewRunStats(),
	}

	if opts.ListOnly {
		for _, scenario := range Catalog() {
			fmt.Fprintf(out, "%-12v %v\n", scenario.Name, scenario.Description)
		}
		return nil
	}

	runner.includePatterns, err = runner.compileGlobs(opts.IncludePatterns, "include")
	if err != nil {
		return fmt.Errorf("failed to compile include patterns '%v': %v", opts.IncludePatterns, err)
	}
	runner.excludePatterns, err = runner.compileGlobs(opts.ExcludePatterns, "exclude")
	if err != nil {
		return fmt.Errorf("failed to compile exclude patterns '%v': %v", opts.ExcludePatterns, err)
	}

	scenarios, err := runner.selectScenarios()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 && len(opts.LuaScriptPath) == 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_SCENARIO,
			InternalError: fmt.Errorf("no scenario matches include patterns %v and exclude patterns %v", opts.IncludePatterns, opts.ExcludePatterns),
		}
	}

	log.Printf("running %v scenarios with %v workers", len(scenarios), opts.Workers)

	results := runner.runAll(scenarios)
	var firstErr error
	for i, scenario := range scenarios {
		fmt.Fprintf(out, "== %v\n", scenario.Name)
		_, err = out.Write(results[i].output.Bytes())
		if err != nil {
			return fmt.Errorf("failed to write output of scenario '%v': %v", scenario.Name, err)
		}
		if results[i].err != nil && firstErr == nil {
			firstErr = results[i].err
		}
	}

	if len(opts.LuaScriptPath) > 0 {
		fmt.Fprintf(out, "== %v\n", opts.LuaScriptPath)
		err = script.RunFile(opts.LuaScriptPath, out, runner.stats)
		if err != nil && firstErr == nil {
			firstErr = &util.ErrorWithCode{
				StatusCode:    util.ERROR_SCRIPT_FAILED,
				InternalError: fmt.Errorf("lua script '%v' failed: %v", opts.LuaScriptPath, err),
			}
		}
		runner.stats.AddScenario(opts.LuaScriptPath)
	}

	if len(opts.StatsPath) > 0 {
		runner.stats.Finalize()
		err = runner.stats.WriteFile(opts.StatsPath)
		if err != nil {
			return err
		}
		log.Printf("written stats of %v steps to '%v'", runner.stats.TotalSteps, opts.StatsPath)
	}

	return firstErr
}

// selectScenarios returns the catalog scenarios matching the patterns, plus
// the inline scenario when steps were given. Inline steps or a lua script
// without include patterns run on their own.
func (runner *scenarioRunner) selectScenarios() ([]Scenario, error) {
	var candidates []Scenario
	customOnly := len(runner.opts.IncludePatterns) == 0 &&
		(len(runner.opts.InlineSteps) > 0 || len(runner.opts.LuaScriptPath) > 0)
	if !customOnly {
		candidates = Catalog()
	}

	if len(runner.opts.InlineSteps) > 0 {
		steps, err := ParseSteps(runner.opts.InlineSteps)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Scenario{
			Name:        inlineScenarioName,
			Description: "steps given on the command line",
			Seed:        runner.opts.Seed,
			Steps:       steps,
		})
	}

	selected := make([]Scenario, 0, len(candidates))
	for _, scenario := range candidates {
		if len(runner.includePatterns) > 0 && !matches(scenario.Name, runner.includePatterns) {
			runner.verboseLog("--- skipping '%v' - not matching include patterns", scenario.Name)
			continue
		}
		if len(runner.excludePatterns) > 0 && matches(scenario.Name, runner.excludePatterns) {
			runner.verboseLog("--- skipping '%v' - matching exclude patterns", scenario.Name)
			continue
		}
		selected = append(selected, scenario)
	}
	return selected, nil
}

func (runner *scenarioRunner) runAll(scenarios []Scenario) []*scenarioResult {
	results := make([]*scenarioResult, len(scenarios))
	queue := parallel.CreateJobQueue(len(scenarios), runner.opts.Workers)
	defer queue.Close()

	for i, scenario := range scenarios {
		result := &scenarioResult{}
		results[i] = result
		_ = queue.Add(func() error {
			result.err = runner.runScenario(scenario, &result.output)
			return result.err
		})
	}
	err := queue.Wait()
	if err != nil {
		runner.verboseLog("scenario failed: %v", err)
	}
	return results
}

// runScenario plays the steps on a fresh list. Each scenario owns its list.
func (runner *scenarioRunner) runScenario(scenario Scenario, out *bytes.Buffer) error {
	var l *list.CursorList[int]
	if scenario.Seed != nil {
		l = list.NewWith(*scenario.Seed)
	} else {
		l = list.New[int]()
	}

	var lines []string
	for _, step := range scenario.Steps {
		line, outcome := step.Apply(l)
		runner.stats.AddStep(step.Operation, outcome)
		runner.verboseLog("%v: %v -> %v", scenario.Name, step, l)
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		out.WriteString(line)
		out.WriteByte('\n')
	}
	runner.stats.AddScenario(scenario.Name)

	if scenario.Expect != nil {
		return compareLines(scenario.Name, scenario.Expect, lines)
	}
	return nil
}

func compareLines(name string, expected []string, actual []string) error {
	for i := 0; i < len(expected) || i < len(actual); i++ {
		var want, got string
		if i < len(expected) {
			want = expected[i]
		}
		if i < len(actual) {
			got = actual[i]
		}
		if want != got {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_SCENARIO_MISMATCH,
				InternalError: fmt.Errorf("scenario '%v' line %v: expected '%v' but got '%v'", name, i+1, want, got),
			}
		}
	}
	return nil
}

func (runner *scenarioRunner) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	runner.verboseLog("%v %v patterns:\n%v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(name string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

func (runner *scenarioRunner) verboseLog(format string, v ...interface{}) {
	if runner.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}
