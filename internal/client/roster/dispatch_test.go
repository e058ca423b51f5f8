package roster

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("EET", 2*3600))

func newTestDispatcher(r Relay) (*Dispatcher, *recorder) {
	rec := &recorder{}
	d := NewDispatcher(r, rec, logging.Nop{})
	d.now = func() time.Time { return fixedNow }
	return d, rec
}

func TestDispatch_RelaySuccess(t *testing.T) {
	relay := &fakeRelay{}
	d, rec := newTestDispatcher(relay)

	require.NoError(t, d.Dispatch(context.Background(), amy))

	assert.False(t, d.State().InFlight(amy.ID))
	assert.Empty(t, d.State().IDs())
	assert.Equal(t, []Notification{{Kind: KindSuccess, Title: "Email Sent", Message: "Email sent successfully to a@x.com"}}, rec.list())
	assert.Equal(t, []models.EmailPayload{{
		Name:       "Amy",
		Email:      "a@x.com",
		EmployeeID: amy.ID,
		Department: "General",
		Timestamp:  "2026-03-04T03:06:07.890Z",
	}}, relay.sent())
}

func TestDispatch_PrefersEmployeeNumber(t *testing.T) {
	relay := &fakeRelay{}
	d, _ := newTestDispatcher(relay)

	e := amy
	e.EmployeeNumber = "E-042"
	require.NoError(t, d.Dispatch(context.Background(), e))

	assert.Equal(t, "E-042", relay.sent()[0].EmployeeID)
}

func TestDispatch_RelayTimeout(t *testing.T) {
	relay := &fakeRelay{answer: func(ctx context.Context, p models.EmailPayload) error {
		ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		<-ctx.Done()
		return errors.New("timeout of 20ms exceeded")
	}}
	d, rec := newTestDispatcher(relay)

	err := d.Dispatch(context.Background(), bob)

	require.Error(t, err)
	assert.False(t, d.State().InFlight(bob.ID))
	assert.Equal(t, []Notification{{
		Kind:    KindError,
		Title:   "Email Error",
		Message: "Failed to send email to b@x.com. timeout of 20ms exceeded",
	}}, rec.list())
}

func TestDispatch_FlagSetWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	relay := &fakeRelay{answer: func(context.Context, models.EmailPayload) error {
		<-release
		return nil
	}}
	d, _ := newTestDispatcher(relay)

	done := make(chan error, 1)
	go func() { done <- d.Dispatch(context.Background(), amy) }()

	require.Eventually(t, func() bool { return d.State().InFlight(amy.ID) }, time.Second, time.Millisecond)
	assert.False(t, d.State().InFlight(bob.ID))
	assert.Equal(t, []string{amy.ID}, d.State().IDs())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, d.State().InFlight(amy.ID))
}

func TestDispatch_DistinctIdentitiesAreIndependent(t *testing.T) {
	gates := map[string]chan struct{}{
		amy.Email: make(chan struct{}),
		bob.Email: make(chan struct{}),
	}
	relay := &fakeRelay{answer: func(_ context.Context, p models.EmailPayload) error {
		<-gates[p.Email]
		if p.Email == bob.Email {
			return errors.New("webhook failed: Bad Gateway")
		}
		return nil
	}}
	d, rec := newTestDispatcher(relay)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, e := range []models.Employee{amy, bob} {
		wg.Add(1)
		go func(e models.Employee) {
			defer wg.Done()
			_ = d.Dispatch(ctx, e)
		}(e)
	}

	require.Eventually(t, func() bool {
		return d.State().InFlight(amy.ID) && d.State().InFlight(bob.ID)
	}, time.Second, time.Millisecond)

	// Bob settles first; Amy's entry must be untouched.
	close(gates[bob.Email])
	require.Eventually(t, func() bool { return !d.State().InFlight(bob.ID) }, time.Second, time.Millisecond)
	assert.True(t, d.State().InFlight(amy.ID))

	close(gates[amy.Email])
	wg.Wait()

	assert.Empty(t, d.State().IDs())
	got := rec.list()
	require.Len(t, got, 2)
	assert.Equal(t, "Failed to send email to b@x.com. webhook failed: Bad Gateway", got[0].Message)
	assert.Equal(t, "Email sent successfully to a@x.com", got[1].Message)
}

func TestDispatch_ClearsFlagOnPanic(t *testing.T) {
	relay := &fakeRelay{answer: func(context.Context, models.EmailPayload) error {
		panic("relay exploded")
	}}
	d, _ := newTestDispatcher(relay)

	require.Panics(t, func() { _ = d.Dispatch(context.Background(), amy) })
	assert.False(t, d.State().InFlight(amy.ID))
}

func TestDispatch_OverlappingSameIdentityNotRejected(t *testing.T) {
	relay := &fakeRelay{}
	d, rec := newTestDispatcher(relay)
	ctx := context.Background()

	require.NoError(t, d.Dispatch(ctx, amy))
	require.NoError(t, d.Dispatch(ctx, amy))

	assert.Len(t, relay.sent(), 2)
	assert.Len(t, rec.list(), 2)
}

func TestStart_TakesFlagBeforeReturning(t *testing.T) {
	release := make(chan struct{})
	relay := &fakeRelay{answer: func(context.Context, models.EmailPayload) error {
		<-release
		return nil
	}}
	d, rec := newTestDispatcher(relay)

	run, ok := d.Start(amy)
	require.True(t, ok)
	assert.True(t, d.State().InFlight(amy.ID), "flag is set before the send runs")

	again, ok := d.Start(amy)
	assert.False(t, ok)
	assert.Nil(t, again)

	other, ok := d.Start(bob)
	require.True(t, ok, "other identities stay dispatchable")

	done := make(chan error, 2)
	go func() { done <- run(context.Background()) }()
	go func() { done <- other(context.Background()) }()
	close(release)
	require.NoError(t, <-done)
	require.NoError(t, <-done)

	assert.Empty(t, d.State().IDs())
	assert.Len(t, relay.sent(), 2)
	assert.Len(t, rec.list(), 2)

	_, ok = d.Start(amy)
	assert.True(t, ok, "settled identity can be dispatched again")
}

func TestStart_ClearsFlagOnFailure(t *testing.T) {
	relay := &fakeRelay{answer: func(context.Context, models.EmailPayload) error {
		return errors.New("request failed with status code 500")
	}}
	d, rec := newTestDispatcher(relay)

	run, ok := d.Start(bob)
	require.True(t, ok)
	require.Error(t, run(context.Background()))

	assert.False(t, d.State().InFlight(bob.ID))
	assert.Equal(t, KindError, rec.list()[0].Kind)
}
