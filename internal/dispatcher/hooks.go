package dispatcher

import (
	"github.com/dshills/mote/internal/dispatcher/handler"
	"github.com/dshills/mote/internal/input"
)

// PostDispatchHook is called after an action is dispatched.
type PostDispatchHook interface {
	// PostDispatch is called after dispatch completes with the state
	// as it is after the action.
	PostDispatch(action input.Action, state *State, result handler.Result)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action input.Action, state *State, result handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action input.Action, state *State, result handler.Result) {
	f(action, state, result)
}
