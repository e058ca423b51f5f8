package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

// ErrSubmitInProgress is returned when a create or update is attempted
// while another one is still pending.
var ErrSubmitInProgress = errors.New("a save is already in progress")

// Store is the record store as seen by the controller.
type Store interface {
	List(ctx context.Context) ([]models.Employee, error)
	Insert(ctx context.Context, fields models.EmployeeFields) (*models.Employee, error)
	UpdateByID(ctx context.Context, id string, fields models.EmployeeFields) (*models.Employee, error)
	DeleteByID(ctx context.Context, id string) error
}

// Controller owns the local mirror of the employee collection.
//
// Create and Update share one submitting flag, so at most one of them is
// pending at a time. Remove takes no flag and may overlap with anything.
type Controller struct {
	store    Store
	session  *Session
	notifier Notifier
	logger   logging.Logger

	mu       sync.Mutex
	mirror   []models.Employee
	loading  int
	refresh  Op
	submit   Op
	removals map[string]int
}

func NewController(s Store, session *Session, n Notifier, l logging.Logger) *Controller {
	return &Controller{
		store:    s,
		session:  session,
		notifier: n,
		logger:   l.With("module", "collection"),
		mirror:   []models.Employee{},
		removals: map[string]int{},
	}
}

// Mirror returns a copy of the current mirror, ordered by name.
func (c *Controller) Mirror() []models.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Employee, len(c.mirror))
	copy(out, c.mirror)
	return out
}

// Find looks a record up in the mirror by identity.
func (c *Controller) Find(id string) (models.Employee, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.mirror {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// Loading reports whether any refresh is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading > 0
}

// Submitting reports whether a create or update is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submit.Phase == PhasePending
}

// Removing reports whether a delete of id is in flight.
func (c *Controller) Removing(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removals[id] > 0
}

// LastRefresh and LastSubmit expose the most recent outcome of each class.
func (c *Controller) LastRefresh() Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh
}

func (c *Controller) LastSubmit() Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submit
}

func (c *Controller) beginRefresh() func(error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading++
	c.refresh = pending()
	return func(err error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.loading--
		c.refresh = settled(err)
	}
}

func (c *Controller) beginSubmit() (func(error), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submit.Phase == PhasePending {
		return nil, ErrSubmitInProgress
	}
	c.submit = pending()
	return func(err error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.submit = settled(err)
	}, nil
}

func (c *Controller) beginRemove(id string) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removals[id]++
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.removals[id]--; c.removals[id] <= 0 {
			delete(c.removals, id)
		}
	}
}

// Refresh re-lists the store and replaces the mirror. On failure the
// previous mirror is kept and an error notification is emitted.
func (c *Controller) Refresh(ctx context.Context) (err error) {
	settle := c.beginRefresh()
	defer func() { settle(err) }()

	list, err := c.store.List(ctx)
	if err != nil {
		c.logger.Warn(ctx, "refresh failed", "error", err)
		c.notifier.Notify(failure("Error", fmt.Sprintf("Failed to fetch employees: %s", err.Error())))
		return err
	}
	if list == nil {
		list = []models.Employee{}
	}

	c.mu.Lock()
	c.mirror = list
	c.mu.Unlock()

	c.logger.Debug(ctx, "mirror replaced", "count", len(list))
	return nil
}

// Create inserts a new record from fields.
func (c *Controller) Create(ctx context.Context, fields models.EmployeeFields) error {
	return c.save(ctx, "", fields)
}

// Update replaces the fields of record id.
func (c *Controller) Update(ctx context.Context, id string, fields models.EmployeeFields) error {
	return c.save(ctx, id, fields)
}

// Submit saves fields against the open session: an update of the edited
// record when Editing, a create otherwise.
func (c *Controller) Submit(ctx context.Context, fields models.EmployeeFields) error {
	return c.StartSubmit(fields)(ctx)
}

// StartSubmit records fields as the session draft and binds the save to the
// session as it is now. The returned func performs it, so a session opened
// afterwards does not change what gets saved.
func (c *Controller) StartSubmit(fields models.EmployeeFields) func(ctx context.Context) error {
	c.session.SetDraft(fields)

	state, target := c.session.Current()
	if state == SessionEditing {
		return func(ctx context.Context) error { return c.Update(ctx, target.ID, fields) }
	}
	return func(ctx context.Context) error { return c.Create(ctx, fields) }
}

// save runs a create (id == "") or an update. Validation failures return
// before the submitting flag is taken and never reach the store.
func (c *Controller) save(ctx context.Context, id string, fields models.EmployeeFields) (err error) {
	if err := fields.Validate(); err != nil {
		return err
	}

	settle, err := c.beginSubmit()
	if err != nil {
		return err
	}
	defer func() { settle(err) }()

	var done string
	if id == "" {
		_, err = c.store.Insert(ctx, fields)
		done = "Employee added successfully!"
	} else {
		_, err = c.store.UpdateByID(ctx, id, fields)
		done = "Employee updated successfully!"
	}

	if err != nil {
		c.logger.Warn(ctx, "save failed", "id", id, "error", err)
		c.notifier.Notify(failure("Error", fmt.Sprintf("Failed to save employee: %s", err.Error())))
		return err
	}

	_ = c.Refresh(ctx)
	c.session.close()
	c.notifier.Notify(success("Success", done))
	return nil
}

// Remove deletes record id. The caller is responsible for having asked
// the operator for confirmation.
func (c *Controller) Remove(ctx context.Context, id string) error {
	done := c.beginRemove(id)
	defer done()

	if err := c.store.DeleteByID(ctx, id); err != nil {
		c.logger.Warn(ctx, "delete failed", "id", id, "error", err)
		c.notifier.Notify(failure("Error", fmt.Sprintf("Failed to delete employee: %s", err.Error())))
		return err
	}

	_ = c.Refresh(ctx)
	c.notifier.Notify(success("Success", "Employee deleted successfully!"))
	return nil
}
