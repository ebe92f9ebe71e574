// Package dnd defines the drag-and-drop protocol shared by every drag
// source and drop target on the board: the payload convention, the session
// state machine, and the capability contracts the participating components
// implement.
package dnd

import "fmt"

// ContentTypeProjectID tags a payload whose value is a project id. Every
// draggable and every drop target in the system agrees on this one token.
const ContentTypeProjectID = "text/plain"

// Effect describes what a completed drag does to the dragged data.
type Effect string

// EffectMove is the only effect the board uses: a drop relocates the
// project, it never copies it.
const EffectMove Effect = "move"

// Payload is the data fixed at drag start and carried for the rest of the
// session. Value is the bare project id; there is no structured encoding.
type Payload struct {
	ContentType string
	Value       string
}

// State is the phase of a drag session.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateDropped
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Draggable is the capability a component needs to start a drag. OnDragStart
// must place the dragged project's id into the session payload under
// ContentTypeProjectID and declare EffectMove.
type Draggable interface {
	OnDragStart(s *Session)
	OnDragEnd(s *Session)
}

// DropTarget is the capability a component needs to receive a drop.
// OnDragOver must accept the session only when the payload content type
// matches the well-known token; OnDrop extracts the id and moves the
// project into the target's own lane; OnDragLeave clears the hover state.
type DropTarget interface {
	OnDragOver(s *Session) bool
	OnDrop(s *Session)
	OnDragLeave(s *Session)
}

// Session tracks one drag gesture: Idle -> Dragging -> Dropped or
// Cancelled. The payload is immutable once Start has fixed it, and Drop
// only succeeds on a session the hovered target previously accepted.
type Session struct {
	state    State
	payload  Payload
	effect   Effect
	accepted bool
}

// NewSession returns an idle session with no payload.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) State() State { return s.state }

func (s *Session) Payload() Payload { return s.payload }

func (s *Session) Effect() Effect { return s.effect }

// Start moves the session to Dragging and fixes its payload and effect.
// It reports false, changing nothing, unless the session is idle.
func (s *Session) Start(p Payload, effect Effect) bool {
	if s.state != StateIdle {
		return false
	}
	s.state = StateDragging
	s.payload = p
	s.effect = effect
	return true
}

// Accept records the hovered target's content-type check. It reports true
// only when the session is dragging and the payload carries the token the
// target expects; any other outcome clears a previous acceptance.
func (s *Session) Accept(contentType string) bool {
	if s.state != StateDragging || s.payload.ContentType != contentType {
		s.accepted = false
		return false
	}
	s.accepted = true
	return true
}

// Leave clears the acceptance recorded by Accept.
func (s *Session) Leave() {
	s.accepted = false
}

// Accepted reports whether a drop is currently allowed.
func (s *Session) Accepted() bool {
	return s.state == StateDragging && s.accepted
}

// Drop completes the session and hands back the payload. It fails on a
// session that is not dragging or that no target accepted.
func (s *Session) Drop() (Payload, bool) {
	if !s.Accepted() {
		return Payload{}, false
	}
	s.state = StateDropped
	return s.payload, true
}

// Cancel terminates a dragging session without a drop. No store
// interaction follows a cancelled session.
func (s *Session) Cancel() {
	if s.state != StateDragging {
		return
	}
	s.state = StateCancelled
	s.accepted = false
}

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool {
	return s.state == StateDropped || s.state == StateCancelled
}
