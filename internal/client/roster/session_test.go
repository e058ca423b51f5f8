package roster

import (
	"testing"

	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSession_Transitions(t *testing.T) {
	s := NewSession()

	state, _ := s.Current()
	assert.Equal(t, SessionClosed, state)
	assert.False(t, s.IsOpen())

	s.OpenCreate()
	state, target := s.Current()
	assert.Equal(t, SessionCreating, state)
	assert.Empty(t, target.ID)

	s.OpenEdit(amy)
	state, target = s.Current()
	assert.Equal(t, SessionEditing, state)
	assert.Equal(t, amy, target)
	assert.Equal(t, amy.Fields(), s.Draft())

	// a new target replaces the previous one
	s.OpenEdit(bob)
	_, target = s.Current()
	assert.Equal(t, bob, target)
	assert.Equal(t, bob.Fields(), s.Draft())

	s.Cancel()
	state, target = s.Current()
	assert.Equal(t, SessionClosed, state)
	assert.Equal(t, models.Employee{}, target)
	assert.Equal(t, models.EmployeeFields{}, s.Draft())
}

func TestSession_OpenCreateClearsEditTarget(t *testing.T) {
	s := NewSession()
	s.OpenEdit(amy)
	s.OpenCreate()

	state, target := s.Current()
	assert.Equal(t, SessionCreating, state)
	assert.Equal(t, models.Employee{}, target)
	assert.Equal(t, models.EmployeeFields{}, s.Draft())
}

func TestSession_SetDraftIgnoredWhenClosed(t *testing.T) {
	s := NewSession()
	s.SetDraft(models.EmployeeFields{Name: "x"})
	assert.Equal(t, models.EmployeeFields{}, s.Draft())

	s.OpenCreate()
	s.SetDraft(models.EmployeeFields{Name: "x"})
	assert.Equal(t, "x", s.Draft().Name)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "editing", SessionEditing.String())
	assert.Equal(t, "closed", SessionClosed.String())
	assert.Equal(t, "pending", PhasePending.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "success", KindSuccess.String())
}
