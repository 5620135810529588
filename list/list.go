// Package list implements a singly-linked list with a movable cursor.
//
// A CursorList is not safe for concurrent use. Callers sharing one list
// between goroutines must serialize every call themselves.
package list

import (
	"errors"
	"iter"

	"cursorlist/util"
)

var (
	ErrEmptyList   = errors.New("cannot advance cursor of an empty list")
	ErrNoSuccessor = errors.New("cursor has no successor to remove")
)

// Node is one link of the chain. A node owns the node after it.
type Node[T any] struct {
	Data T
	next *Node[T]
}

// CursorList is a chain of nodes starting at head, plus a cursor that refers
// to one node of that chain. The cursor is nil exactly when the list is empty.
type CursorList[T any] struct {
	head   *Node[T]
	cursor *Node[T]
	length int
}

func New[T any]() *CursorList[T] {
	return &CursorList[T]{}
}

// NewWith returns a list holding a single node with value, which is both
// head and cursor.
func NewWith[T any](value T) *CursorList[T] {
	node := &Node[T]{Data: value}
	return &CursorList[T]{
		head:   node,
		cursor: node,
		length: 1,
	}
}

func (l *CursorList[T]) Len() int {
	return l.length
}

func (l *CursorList[T]) IsEmpty() bool {
	return l.head == nil
}

// AdvanceCursor moves the cursor one node forward, wrapping to head when the
// cursor is on the last node.
func (l *CursorList[T]) AdvanceCursor() error {
	if l.cursor == nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_EMPTY_LIST,
			InternalError: ErrEmptyList,
		}
	}
	if l.cursor.next != nil {
		l.cursor = l.cursor.next
	} else {
		l.cursor = l.head
	}
	return nil
}

func (l *CursorList[T]) ResetCursor() {
	l.cursor = l.head
}

// Current returns the value under the cursor. ok is false when the list is empty.
func (l *CursorList[T]) Current() (value T, ok bool) {
	if l.cursor == nil {
		return value, false
	}
	return l.cursor.Data, true
}

// Head returns the value of the first node. ok is false when the list is empty.
func (l *CursorList[T]) Head() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.Data, true
}

// InsertBeginning makes value the new first node. The cursor keeps pointing at
// the node it pointed at before, unless the list was empty.
func (l *CursorList[T]) InsertBeginning(value T) {
	node := &Node[T]{Data: value, next: l.head}
	l.head = node
	if l.cursor == nil {
		l.cursor = node
	}
	l.length++
}

// InsertCurrentNext links value right after the cursor without moving it.
// On an empty list it behaves like InsertBeginning.
func (l *CursorList[T]) InsertCurrentNext(value T) {
	if l.cursor == nil {
		l.InsertBeginning(value)
		return
	}
	l.cursor.next = &Node[T]{Data: value, next: l.cursor.next}
	l.length++
}

// RemoveBeginning unlinks the first node and returns its value. The cursor is
// always moved to the new head, wherever it was before.
func (l *CursorList[T]) RemoveBeginning() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	removed := l.head
	l.head = removed.next
	l.cursor = l.head
	removed.next = nil
	l.length--
	return removed.Data, true
}

// RemoveCurrentNext unlinks the node after the cursor and returns its value.
// ok is false with a nil error when the list is empty. When the cursor is on
// the last node the list is left untouched and ErrNoSuccessor is returned.
func (l *CursorList[T]) RemoveCurrentNext() (value T, ok bool, err error) {
	if l.cursor == nil {
		return value, false, nil
	}
	removed := l.cursor.next
	if removed == nil {
		return value, false, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_SUCCESSOR,
			InternalError: ErrNoSuccessor,
		}
	}
	l.cursor.next = removed.next
	removed.next = nil
	l.length--
	return removed.Data, true, nil
}

// Values returns a traversal from head to the last node. Every call starts
// over at head and does not touch the cursor.
func (l *CursorList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Data) {
				return
			}
		}
	}
}

func (l *CursorList[T]) Slice() []T {
	values := make([]T, 0, l.length)
	for value := range l.Values() {
		values = append(values, value)
	}
	return values
}
