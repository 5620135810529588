package demo

import (
	"fmt"
	"strconv"
	"strings"

	"cursorlist/list"
	"cursorlist/stats"
	"cursorlist/util"
)

const noValueText = "no value"

// Step is one list operation, with a value for the insert operations.
type Step struct {
	Operation stats.Operation
	Value     int
}

func (step Step) String() string {
	if stats.TakesArgument(step.Operation) {
		return fmt.Sprintf("%v:%v", step.Operation, step.Value)
	}
	return step.Operation
}

// Apply runs the step on l and returns the line it prints, which is empty for
// steps that print nothing. Errors from the list are reported in the line.
func (step Step) Apply(l *list.CursorList[int]) (string, stats.Outcome) {
	switch step.Operation {
	case stats.OpRender:
		return l.String(), stats.OutcomeDone
	case stats.OpGetCurrent:
		value, ok := l.Current()
		if !ok {
			return "current: " + noValueText, stats.OutcomeEmpty
		}
		return fmt.Sprintf("current: %v", value), stats.OutcomeValue
	case stats.OpAdvanceCursor:
		if err := l.AdvanceCursor(); err != nil {
			return "error: " + err.Error(), stats.OutcomeError
		}
		return "", stats.OutcomeDone
	case stats.OpResetCursor:
		l.ResetCursor()
		return "", stats.OutcomeDone
	case stats.OpInsertBeginning:
		l.InsertBeginning(step.Value)
		return "", stats.OutcomeDone
	case stats.OpInsertCurrentNext:
		l.InsertCurrentNext(step.Value)
		return "", stats.OutcomeDone
	case stats.OpRemoveBeginning:
		value, ok := l.RemoveBeginning()
		if !ok {
			return "removed: " + noValueText, stats.OutcomeEmpty
		}
		return fmt.Sprintf("removed: %v", value), stats.OutcomeValue
	case stats.OpRemoveCurrentNext:
		value, ok, err := l.RemoveCurrentNext()
		if err != nil {
			return "error: " + err.Error(), stats.OutcomeError
		}
		if !ok {
			return "removed: " + noValueText, stats.OutcomeEmpty
		}
		return fmt.Sprintf("removed: %v", value), stats.OutcomeValue
	}
	return fmt.Sprintf("error: unknown operation '%v'", step.Operation), stats.OutcomeError
}

func badStep(format string, v ...interface{}) error {
	return &util.ErrorWithCode{
		StatusCode:    util.ERROR_BAD_STEP,
		InternalError: fmt.Errorf(format, v...),
	}
}

// ParseSteps parses a comma delimited script such as
// "insertBeginning:25,advanceCursor,render".
func ParseSteps(script string) ([]Step, error) {
	var steps []Step
	for i, token := range strings.Split(script, ",") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}
		name, arg, hasArg := strings.Cut(token, ":")
		operation, found := stats.GetOperationFromName(name)
		if !found {
			return nil, badStep("step %v: unknown operation '%v'", i+1, name)
		}
		step := Step{Operation: operation}
		if stats.TakesArgument(operation) {
			if !hasArg {
				return nil, badStep("step %v: '%v' requires a value", i+1, operation)
			}
			value, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				return nil, badStep("step %v: bad value '%v' for '%v': %v", i+1, arg, operation, err)
			}
			step.Value = value
		} else if hasArg {
			return nil, badStep("step %v: '%v' takes no value", i+1, operation)
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, badStep("no steps in '%v'", script)
	}
	return steps, nil
}
