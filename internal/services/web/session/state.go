package session

type stateKind uint8

const (
	stateUnresolved stateKind = iota
	stateAbsent
	statePresent
)

// State is the outcome of resolving a request's session. The zero value is
// unresolved: resolution has not completed, so no session may be assumed.
type State struct {
	kind    stateKind
	session Session
}

// Unresolved returns the pending state.
func Unresolved() State { return State{} }

// Absent returns the state of a request known to have no session.
func Absent() State { return State{kind: stateAbsent} }

// Present returns the state of a request with a resolved session.
func Present(s Session) State { return State{kind: statePresent, session: s} }

// Session returns the session and true only when the state is present.
func (s State) Session() (Session, bool) {
	if s.kind != statePresent {
		return Session{}, false
	}
	return s.session, true
}

// Resolved reports whether resolution completed, with or without a session.
func (s State) Resolved() bool {
	return s.kind != stateUnresolved
}

func (s State) String() string {
	switch s.kind {
	case stateAbsent:
		return "absent"
	case statePresent:
		return "present"
	default:
		return "unresolved"
	}
}
