package demo

import "cursorlist/stats"

// Scenario is a sequence of steps run on a fresh list. When Expect is set the
// printed lines must match it exactly.
type Scenario struct {
	Name        string
	Description string
	Seed        *int
	Steps       []Step
	Expect      []string
}

const (
	errEmptyText       = "error: cannot advance cursor of an empty list"
	errNoSuccessorText = "error: cursor has no successor to remove"
)

func op(operation stats.Operation) Step {
	return Step{Operation: operation}
}

func insertBeginning(value int) Step {
	return Step{Operation: stats.OpInsertBeginning, Value: value}
}

func insertCurrentNext(value int) Step {
	return Step{Operation: stats.OpInsertCurrentNext, Value: value}
}

// extend copies base and appends the extra steps and lines, so scenarios can
// share a prefix without sharing backing arrays.
func extend(base Scenario, name string, description string, steps []Step, expect []string) Scenario {
	return Scenario{
		Name:        name,
		Description: description,
		Steps:       append(append([]Step{}, base.Steps...), steps...),
		Expect:      append(append([]string{}, base.Expect...), expect...),
	}
}

// Catalog returns the built-in scenarios in run order.
func Catalog() []Scenario {
	walkthrough := Scenario{
		Name:        "walkthrough",
		Description: "the classic demonstration sequence of the linked list",
		Steps: []Step{
			op(stats.OpRender),
			insertBeginning(25),
			op(stats.OpRender),
			insertBeginning(37),
			op(stats.OpRender),
			op(stats.OpAdvanceCursor),
			op(stats.OpRender),
			op(stats.OpGetCurrent),
			insertCurrentNext(32),
			op(stats.OpRender),
			op(stats.OpAdvanceCursor),
			op(stats.OpRender),
			op(stats.OpGetCurrent),
			op(stats.OpResetCursor),
			op(stats.OpRender),
			insertCurrentNext(28),
			op(stats.OpRender),
			op(stats.OpRemoveBeginning),
			op(stats.OpRender),
			op(stats.OpRemoveCurrentNext),
			op(stats.OpRender),
		},
		Expect: []string{
			"Empty Linked List",
			"25 Current: 25",
			"37 25 Current: 25",
			"37 25 Current: 37",
			"current: 37",
			"37 32 25 Current: 37",
			"37 32 25 Current: 32",
			"current: 32",
			"37 32 25 Current: 37",
			"37 28 32 25 Current: 37",
			"removed: 37",
			"28 32 25 Current: 28",
			"removed: 32",
			"28 25 Current: 28",
		},
	}

	scenarioA := extend(Scenario{}, "scenario-a", "front inserts keep the cursor in place",
		[]Step{
			op(stats.OpRender),
			op(stats.OpGetCurrent),
			insertBeginning(25),
			op(stats.OpGetCurrent),
			insertBeginning(37),
			op(stats.OpRender),
			op(stats.OpGetCurrent),
		},
		[]string{
			"Empty Linked List",
			"current: " + noValueText,
			"current: 25",
			"37 25 Current: 25",
			"current: 25",
		})

	scenarioB := extend(scenarioA, "scenario-b", "insert after the cursor does not move it",
		[]Step{
			op(stats.OpAdvanceCursor),
			op(stats.OpGetCurrent),
			op(stats.OpAdvanceCursor),
			op(stats.OpGetCurrent),
			insertCurrentNext(32),
			op(stats.OpRender),
		},
		[]string{
			"current: 37",
			"current: 25",
			"37 25 32 Current: 25",
		})

	scenarioC := extend(scenarioB, "scenario-c", "advancing from the last node wraps to head",
		[]Step{
			op(stats.OpAdvanceCursor),
			op(stats.OpGetCurrent),
			op(stats.OpAdvanceCursor),
			op(stats.OpGetCurrent),
		},
		[]string{
			"current: 32",
			"current: 37",
		})

	scenarioD := extend(scenarioC, "scenario-d", "removing the head moves the cursor to the new head",
		[]Step{
			op(stats.OpAdvanceCursor),
			op(stats.OpAdvanceCursor),
			op(stats.OpRender),
			op(stats.OpRemoveBeginning),
			op(stats.OpRender),
		},
		[]string{
			"37 25 32 Current: 32",
			"removed: 37",
			"25 32 Current: 25",
		})

	scenarioE := extend(scenarioB, "scenario-e", "removing after the last node is an error",
		[]Step{
			op(stats.OpAdvanceCursor),
			op(stats.OpRemoveCurrentNext),
			op(stats.OpRender),
		},
		[]string{
			errNoSuccessorText,
			"37 25 32 Current: 32",
		})

	drain := Scenario{
		Name:        "drain",
		Description: "remove from the head until the list is empty",
		Steps: []Step{
			insertBeginning(1),
			insertBeginning(2),
			insertBeginning(3),
			op(stats.OpRender),
			op(stats.OpRemoveBeginning),
			op(stats.OpRemoveBeginning),
			op(stats.OpRemoveBeginning),
			op(stats.OpRemoveBeginning),
			op(stats.OpRender),
			op(stats.OpGetCurrent),
			op(stats.OpAdvanceCursor),
			op(stats.OpRemoveCurrentNext),
		},
		Expect: []string{
			"3 2 1 Current: 1",
			"removed: 3",
			"removed: 2",
			"removed: 1",
			"removed: " + noValueText,
			"Empty Linked List",
			"current: " + noValueText,
			errEmptyText,
			"removed: " + noValueText,
		},
	}

	return []Scenario{walkthrough, scenarioA, scenarioB, scenarioC, scenarioD, scenarioE, drain}
}
