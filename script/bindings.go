package script

import (
	"cursorlist/list"
	"cursorlist/stats"

	lua "github.com/yuin/gopher-lua"
)

const listTypeName = "cursorlist.list"

func (s *State) registerList() {
	L := s.L

	mt := L.NewTypeMetatable(listTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"advance":             s.advance,
		"reset":               s.reset,
		"current":             s.current,
		"insert_beginning":    s.insertBeginning,
		"insert_current_next": s.insertCurrentNext,
		"remove_beginning":    s.removeBeginning,
		"remove_current_next": s.removeCurrentNext,
		"values":              s.values,
		"render":              s.render,
		"len":                 s.length,
	}))
	L.SetField(mt, "__tostring", L.NewFunction(s.render))
	L.SetField(mt, "__len", L.NewFunction(s.length))

	module := L.NewTable()
	L.SetField(module, "new", L.NewFunction(s.newList))
	L.SetGlobal("list", module)
}

// newList implements list.new([value]).
func (s *State) newList(L *lua.LState) int {
	var l *list.CursorList[lua.LValue]
	if value := L.Get(1); value != lua.LNil {
		l = list.NewWith(value)
	} else {
		l = list.New[lua.LValue]()
	}

	ud := L.NewUserData()
	ud.Value = l
	L.SetMetatable(ud, L.GetTypeMetatable(listTypeName))
	L.Push(ud)
	return 1
}

func checkList(L *lua.LState) *list.CursorList[lua.LValue] {
	ud := L.CheckUserData(1)
	if l, ok := ud.Value.(*list.CursorList[lua.LValue]); ok {
		return l
	}
	L.ArgError(1, "list expected")
	return nil
}

func checkValue(L *lua.LState) lua.LValue {
	value := L.CheckAny(2)
	if value == lua.LNil {
		L.ArgError(2, "value expected, got nil")
	}
	return value
}

// pushResult pushes value, or nil when ok is false, and records the outcome.
func (s *State) pushResult(L *lua.LState, operation stats.Operation, value lua.LValue, ok bool) int {
	if !ok {
		s.recorder.AddStep(operation, stats.OutcomeEmpty)
		L.Push(lua.LNil)
		return 1
	}
	s.recorder.AddStep(operation, stats.OutcomeValue)
	L.Push(value)
	return 1
}

func (s *State) pushError(L *lua.LState, operation stats.Operation, err error) int {
	s.recorder.AddStep(operation, stats.OutcomeError)
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

func (s *State) advance(L *lua.LState) int {
	l := checkList(L)
	if err := l.AdvanceCursor(); err != nil {
		return s.pushError(L, stats.OpAdvanceCursor, err)
	}
	s.recorder.AddStep(stats.OpAdvanceCursor, stats.OutcomeDone)
	L.Push(lua.LTrue)
	return 1
}

func (s *State) reset(L *lua.LState) int {
	checkList(L).ResetCursor()
	s.recorder.AddStep(stats.OpResetCursor, stats.OutcomeDone)
	return 0
}

func (s *State) current(L *lua.LState) int {
	value, ok := checkList(L).Current()
	return s.pushResult(L, stats.OpGetCurrent, value, ok)
}

func (s *State) insertBeginning(L *lua.LState) int {
	l := checkList(L)
	l.InsertBeginning(checkValue(L))
	s.recorder.AddStep(stats.OpInsertBeginning, stats.OutcomeDone)
	return 0
}

func (s *State) insertCurrentNext(L *lua.LState) int {
	l := checkList(L)
	l.InsertCurrentNext(checkValue(L))
	s.recorder.AddStep(stats.OpInsertCurrentNext, stats.OutcomeDone)
	return 0
}

func (s *State) removeBeginning(L *lua.LState) int {
	value, ok := checkList(L).RemoveBeginning()
	return s.pushResult(L, stats.OpRemoveBeginning, value, ok)
}

func (s *State) removeCurrentNext(L *lua.LState) int {
	value, ok, err := checkList(L).RemoveCurrentNext()
	if err != nil {
		return s.pushError(L, stats.OpRemoveCurrentNext, err)
	}
	return s.pushResult(L, stats.OpRemoveCurrentNext, value, ok)
}

// values returns the chain from head to tail as a sequence table.
func (s *State) values(L *lua.LState) int {
	l := checkList(L)
	t := L.CreateTable(l.Len(), 0)
	for value := range l.Values() {
		t.Append(value)
	}
	L.Push(t)
	return 1
}

func (s *State) render(L *lua.LState) int {
	l := checkList(L)
	s.recorder.AddStep(stats.OpRender, stats.OutcomeDone)
	L.Push(lua.LString(l.String()))
	return 1
}

func (s *State) length(L *lua.LState) int {
	L.Push(lua.LNumber(checkList(L).Len()))
	return 1
}
