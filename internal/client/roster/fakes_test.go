package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

type recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

func (r *recorder) list() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.all))
	copy(out, r.all)
	return out
}

// memStore keeps records ordered by name the way the real store does.
type memStore struct {
	mu      sync.Mutex
	rows    map[string]models.Employee
	nextID  int
	calls   map[string]int
	listErr error
	saveErr error

	// gate, when set, blocks Insert/UpdateByID until it is closed.
	gate chan struct{}
	// listGates are consumed one per List call when non-empty.
	listGates []chan struct{}
}

func newMemStore(rows ...models.Employee) *memStore {
	s := &memStore{rows: map[string]models.Employee{}, calls: map[string]int{}}
	for _, r := range rows {
		s.rows[r.ID] = r
	}
	return s
}

func (s *memStore) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *memStore) List(ctx context.Context) ([]models.Employee, error) {
	s.mu.Lock()
	s.calls["list"]++
	var gate chan struct{}
	if len(s.listGates) > 0 {
		gate, s.listGates = s.listGates[0], s.listGates[1:]
	}
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Employee, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *memStore) wait() {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (s *memStore) Insert(ctx context.Context, f models.EmployeeFields) (*models.Employee, error) {
	s.mu.Lock()
	s.calls["insert"]++
	s.mu.Unlock()
	s.wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.nextID++
	e := f.WithID(fmt.Sprintf("gen-%d", s.nextID))
	s.rows[e.ID] = e
	return &e, nil
}

func (s *memStore) UpdateByID(ctx context.Context, id string, f models.EmployeeFields) (*models.Employee, error) {
	s.mu.Lock()
	s.calls["update"]++
	s.mu.Unlock()
	s.wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	if _, ok := s.rows[id]; !ok {
		return nil, errNotFound
	}
	e := f.WithID(id)
	s.rows[id] = e
	return &e, nil
}

func (s *memStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls["delete"]++
	if _, ok := s.rows[id]; !ok {
		return errNotFound
	}
	delete(s.rows, id)
	return nil
}

var errNotFound = errors.New("employee not found")

// fakeRelay answers per recipient email.
type fakeRelay struct {
	mu       sync.Mutex
	payloads []models.EmailPayload
	answer   func(ctx context.Context, p models.EmailPayload) error
}

func (r *fakeRelay) Send(ctx context.Context, p models.EmailPayload) error {
	r.mu.Lock()
	r.payloads = append(r.payloads, p)
	answer := r.answer
	r.mu.Unlock()
	if answer == nil {
		return nil
	}
	return answer(ctx, p)
}

func (r *fakeRelay) sent() []models.EmailPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.EmailPayload, len(r.payloads))
	copy(out, r.payloads)
	return out
}
