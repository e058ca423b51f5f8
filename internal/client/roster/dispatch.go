package roster

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

// Relay delivers one notification payload.
type Relay interface {
	Send(ctx context.Context, payload models.EmailPayload) error
}

// DispatchState maps employee identity to "send in progress". An identity
// that is absent from the map is not in progress; entries are added when a
// dispatch starts and removed when it settles, whatever the outcome.
type DispatchState struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewDispatchState() *DispatchState {
	return &DispatchState{inFlight: map[string]bool{}}
}

// InFlight reports whether a dispatch for id is pending.
func (s *DispatchState) InFlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[id]
}

// IDs returns the identities with a pending dispatch, sorted.
func (s *DispatchState) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.inFlight))
	for id := range s.inFlight {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *DispatchState) begin(id string) func() {
	s.mu.Lock()
	s.inFlight[id] = true
	s.mu.Unlock()
	return s.release(id)
}

// tryBegin marks id as in flight unless it already is.
func (s *DispatchState) tryBegin(id string) (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[id] {
		return nil, false
	}
	s.inFlight[id] = true
	return s.release(id), true
}

func (s *DispatchState) release(id string) func() {
	return func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
	}
}

// Dispatcher sends notification emails through the relay, one attempt per
// call. Dispatch does not refuse a second dispatch for an identity that is
// already in flight; Start does.
type Dispatcher struct {
	relay    Relay
	state    *DispatchState
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time
}

func NewDispatcher(r Relay, n Notifier, l logging.Logger) *Dispatcher {
	return &Dispatcher{
		relay:    r,
		state:    NewDispatchState(),
		notifier: n,
		logger:   l.With("module", "dispatch"),
		now:      time.Now,
	}
}

// State exposes the per-identity dispatch state.
func (d *Dispatcher) State() *DispatchState {
	return d.state
}

// Dispatch sends the notification email for e and reports the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, e models.Employee) error {
	done := d.state.begin(e.ID)
	defer done()
	return d.send(ctx, e)
}

// Start marks e as in flight and returns the send to run, or ok == false
// when a dispatch for e.ID is already pending. The flag is taken before
// Start returns, so a caller may run the send on another goroutine. run
// must be called exactly once; it clears the flag when it settles.
func (d *Dispatcher) Start(e models.Employee) (run func(ctx context.Context) error, ok bool) {
	done, ok := d.state.tryBegin(e.ID)
	if !ok {
		return nil, false
	}
	return func(ctx context.Context) error {
		defer done()
		return d.send(ctx, e)
	}, true
}

func (d *Dispatcher) send(ctx context.Context, e models.Employee) error {
	payload := models.NewEmailPayload(e, d.now())

	d.logger.Debug(ctx, "sending email", "id", e.ID, "email", e.Email)

	if err := d.relay.Send(ctx, payload); err != nil {
		d.logger.Warn(ctx, "email send failed", "id", e.ID, "error", err)
		d.notifier.Notify(failure("Email Error", fmt.Sprintf("Failed to send email to %s. %s", e.Email, err.Error())))
		return err
	}

	d.notifier.Notify(success("Email Sent", fmt.Sprintf("Email sent successfully to %s", e.Email)))
	return nil
}
