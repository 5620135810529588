// Package script runs Lua scenario scripts against cursor lists.
//
// A script sees a global "list" table whose new function returns list
// objects:
//
//	local l = list.new()
//	l:insert_beginning(25)
//	l:insert_beginning(37)
//	print(l:render())          -- 37 25 Current: 25
//	local v, err = l:remove_current_next()
//
// Operations that fail on the list return nil and an error message instead of
// raising, so scripts can check preconditions the way the Go API does.
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cursorlist/stats"

	lua "github.com/yuin/gopher-lua"
)

var ErrStateClosed = errors.New("lua state is closed")

// Recorder receives every list operation performed by a script.
type Recorder interface {
	AddStep(operation stats.Operation, outcome stats.Outcome)
}

type nopRecorder struct{}

func (nopRecorder) AddStep(stats.Operation, stats.Outcome) {}

// State wraps a gopher-lua state with the list bindings installed.
//
// gopher-lua's LState is not goroutine-safe; a State must be used from one
// goroutine at a time.
type State struct {
	L        *lua.LState
	out      io.Writer
	recorder Recorder
	closed   bool
}

// NewState creates a Lua state with only the base, table, string and math
// libraries. print writes to out.
func NewState(out io.Writer, recorder Recorder) *State {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state := &State{
		L:        L,
		out:      out,
		recorder: recorder,
	}

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// base opens loaders that reach the file system
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	L.SetGlobal("print", L.NewFunction(state.print))

	state.registerList()
	return state
}

func (s *State) DoFile(path string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoFile(path)
	})
}

func (s *State) DoString(code string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoString(code)
	})
}

func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

func (s *State) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(s.out, strings.Join(parts, "\t"))
	return 0
}

// RunFile executes the script at path, printing to out.
func RunFile(path string, out io.Writer, recorder Recorder) error {
	state := NewState(out, recorder)
	defer state.Close()
	return state.DoFile(path)
}
