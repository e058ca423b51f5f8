package roster

import (
	"sync"

	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

// SessionState is the edit form's state.
type SessionState int

const (
	SessionClosed SessionState = iota
	SessionCreating
	SessionEditing
)

func (s SessionState) String() string {
	switch s {
	case SessionCreating:
		return "creating"
	case SessionEditing:
		return "editing"
	default:
		return "closed"
	}
}

// Session holds at most one open edit form: nothing (Closed), a new record
// (Creating) or an existing one (Editing). Opening a form always replaces
// whatever was open before.
//
// The draft is the form content last submitted or opened; it survives a
// failed submit so the operator can retry.
type Session struct {
	mu     sync.Mutex
	state  SessionState
	target models.Employee
	draft  models.EmployeeFields
}

func NewSession() *Session {
	return &Session{}
}

// OpenCreate opens an empty form for a new record.
func (s *Session) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionCreating
	s.target = models.Employee{}
	s.draft = models.EmployeeFields{}
}

// OpenEdit opens the form for r, prefilled with its current values.
func (s *Session) OpenEdit(r models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionEditing
	s.target = r
	s.draft = r.Fields()
}

// Cancel closes the form from any state.
func (s *Session) Cancel() {
	s.close()
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionClosed
	s.target = models.Employee{}
	s.draft = models.EmployeeFields{}
}

// Current returns the state and, when Editing, the target record.
func (s *Session) Current() (SessionState, models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.target
}

// IsOpen reports whether a form is open.
func (s *Session) IsOpen() bool {
	state, _ := s.Current()
	return state != SessionClosed
}

// Draft returns the retained form content.
func (s *Session) Draft() models.EmployeeFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft records the form content about to be submitted. It is a no-op
// when the form is closed.
func (s *Session) SetDraft(f models.EmployeeFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SessionClosed {
		s.draft = f
	}
}
