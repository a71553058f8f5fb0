// Package input turns key events into editor actions.
//
// The mapping is a pure function of the event and the current mode:
//
//	action, ok := input.Resolve(event, mode.Normal)
//
// Resolve has no side effects and never fails. Keys that mean nothing in
// the given mode resolve to ok == false and are dropped by the caller.
//
// # Bindings
//
// Normal mode:
//
//	q  quit          h  move left    j  move down
//	k  move up       l  move right   i  enter insert mode
//
// Insert mode:
//
//	printable rune  insert it
//	Esc             return to normal mode
//	Backspace       remove the character before the cursor
//	Enter           split the line at the cursor
//
// Bindings are fixed; there is no keymap configuration.
package input
