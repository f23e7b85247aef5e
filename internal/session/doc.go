// Package session implements the single-operator submission workflow.
//
// One Machine owns one Session at a time. Inbound events (commands, free
// text, media uploads, button presses) are applied as operations that
// validate input, advance the state machine and, for media submissions,
// drive the fetch → extract → tag pipeline through the collaborator
// interfaces. Event handling is expected to be strictly serial: the caller
// must finish one operation, including its blocking I/O, before starting
// the next.
package session
