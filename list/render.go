package list

import (
	"fmt"
	"io"
	"strings"
)

const emptyListText = "Empty Linked List"

// Render writes the chain from head to tail followed by the value under the
// cursor, e.g. "37 25 32 Current: 37", or "Empty Linked List".
func (l *CursorList[T]) Render(w io.Writer) error {
	_, err := io.WriteString(w, l.String())
	return err
}

func (l *CursorList[T]) String() string {
	current, ok := l.Current()
	if !ok {
		return emptyListText
	}
	var sb strings.Builder
	for value := range l.Values() {
		fmt.Fprintf(&sb, "%v ", value)
	}
	fmt.Fprintf(&sb, "Current: %v", current)
	return sb.String()
}
