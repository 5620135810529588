package stats

import "strings"

// Operation type alias for readability
type Operation = string

const (
	OpAdvanceCursor     Operation = "advanceCursor"
	OpResetCursor       Operation = "resetCursor"
	OpGetCurrent        Operation = "getCurrent"
	OpInsertBeginning   Operation = "insertBeginning"
	OpInsertCurrentNext Operation = "insertCurrentNext"
	OpRemoveBeginning   Operation = "removeBeginning"
	OpRemoveCurrentNext Operation = "removeCurrentNext"
	OpRender            Operation = "render"
)

var operationToAliases = map[Operation][]string{
	OpAdvanceCursor:     {"advancecursor", "advance", "nextcurrent", "next"},
	OpResetCursor:       {"resetcursor", "reset", "resetcurrent"},
	OpGetCurrent:        {"getcurrent", "current"},
	OpInsertBeginning:   {"insertbeginning", "pushfront"},
	OpInsertCurrentNext: {"insertcurrentnext", "insertafter"},
	OpRemoveBeginning:   {"removebeginning", "popfront"},
	OpRemoveCurrentNext: {"removecurrentnext", "removeafter"},
	OpRender:            {"render", "printlist", "print"},
}

// operations that take a value argument
var withArgument = map[Operation]bool{
	OpInsertBeginning:   true,
	OpInsertCurrentNext: true,
}

var aliasToOperation = make(map[string]Operation)

func init() {
	for operation, aliases := range operationToAliases {
		for _, alias := range aliases {
			aliasToOperation[alias] = operation
		}
	}
}

// GetOperationFromName returns the canonical operation for a step name.
// Names are matched case-insensitively and may use '-' or '_' separators,
// so "insert_current_next", "insertCurrentNext" and "nextCurrent" all resolve.
// Returns the operation and true if found, or empty string and false if not recognized.
func GetOperationFromName(name string) (Operation, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("-", "", "_", "").Replace(name)
	if len(name) == 0 {
		return "", false
	}
	operation, found := aliasToOperation[name]
	return operation, found
}

// TakesArgument reports whether operation expects a value.
func TakesArgument(operation Operation) bool {
	return withArgument[operation]
}
