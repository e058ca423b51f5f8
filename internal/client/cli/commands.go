package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/client/roster"
	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

func (a *App) List(ctx context.Context) error {
	if a.collection.Loading() {
		a.out.Println(muted.Render("Loading employees..."))
	}
	a.out.Println(renderRoster(a.collection.Mirror(), a.dispatcher.State().InFlight))
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	a.async(func() { _ = a.collection.Refresh(ctx) })
	return nil
}

// Add opens a blank form, reads it and submits it.
func (a *App) Add(ctx context.Context) error {
	a.session.OpenCreate()
	return a.fillAndSubmit(ctx)
}

// Edit opens the form for a mirrored record, reads it and submits it.
func (a *App) Edit(ctx context.Context, id string) error {
	e, ok := a.collection.Find(id)
	if !ok {
		a.out.Printf("Unknown employee %q. Use 'list' to see ids.\n", id)
		return common.ErrorNotFound
	}
	a.session.OpenEdit(e)
	return a.fillAndSubmit(ctx)
}

// Submit re-reads the retained form, offering the last submitted values as
// defaults, and submits it again.
func (a *App) Submit(ctx context.Context) error {
	if !a.session.IsOpen() {
		a.out.Println("No open form. Use 'add' or 'edit <id>'.")
		return nil
	}
	return a.fillAndSubmit(ctx)
}

func (a *App) Cancel(ctx context.Context) error {
	a.session.Cancel()
	a.out.Println("Form closed.")
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	label := id
	if e, ok := a.collection.Find(id); ok {
		label = fmt.Sprintf("%s (%s)", e.Name, e.Email)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Are you sure you want to delete %s?", label), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.out.Println("Delete cancelled.")
		return nil
	}

	a.async(func() { _ = a.collection.Remove(ctx, id) })
	return nil
}

// Send dispatches the notification email unless one is already in flight
// for that employee.
func (a *App) Send(ctx context.Context, id string) error {
	e, ok := a.collection.Find(id)
	if !ok {
		a.out.Printf("Unknown employee %q. Use 'list' to see ids.\n", id)
		return common.ErrorNotFound
	}
	run, ok := a.dispatcher.Start(e)
	if !ok {
		a.out.Printf("An email to %s is already being sent.\n", e.Email)
		return nil
	}

	a.out.Printf("Sending email to %s...\n", e.Email)
	a.async(func() { _ = run(ctx) })
	return nil
}

func (a *App) Status(ctx context.Context) error {
	state, target := a.session.Current()
	form := state.String()
	if state == roster.SessionEditing {
		form = fmt.Sprintf("%s %s (%s)", form, target.Name, target.ID)
	}

	sending := a.dispatcher.State().IDs()
	if len(sending) == 0 {
		sending = []string{"none"}
	}

	a.out.Printf("Store:      %s\n", orUnknown(string(a.Mode())))
	a.out.Printf("Form:       %s\n", form)
	a.out.Printf("Loading:    %t (last refresh %s)\n", a.collection.Loading(), describe(a.collection.LastRefresh()))
	a.out.Printf("Saving:     %t (last save %s)\n", a.collection.Submitting(), describe(a.collection.LastSubmit()))
	a.out.Printf("Sending to: %s\n", strings.Join(sending, ", "))
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	start := time.Now()
	if err := a.store.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		a.out.Println(renderNotification(roster.Notification{Kind: roster.KindError, Title: "Ping", Message: err.Error()}))
		return err
	}
	a.setMode(ctx, ModeOnline)
	a.out.Printf("Record store is serving (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// fillAndSubmit reads the form fields, defaulting to the session draft, and
// submits them in the background.
func (a *App) fillAndSubmit(ctx context.Context) error {
	fields, err := a.readForm(a.session.Draft())
	if err != nil {
		return err
	}
	a.submit(ctx, fields)
	return nil
}

func (a *App) readForm(def models.EmployeeFields) (models.EmployeeFields, error) {
	var f models.EmployeeFields
	var err error

	w := a.out
	if f.Name, err = GetWithDefault(a.reader, "Name *", def.Name, w); err != nil {
		return f, err
	}
	if f.EmployeeNumber, err = GetWithDefault(a.reader, "Employee number", def.EmployeeNumber, w); err != nil {
		return f, err
	}
	if f.Email, err = GetWithDefault(a.reader, "Email *", def.Email, w); err != nil {
		return f, err
	}
	if f.Phone, err = GetWithDefault(a.reader, "Phone", def.Phone, w); err != nil {
		return f, err
	}
	return f, nil
}

// submit saves fields in the background. Failures the core does not report
// as notifications (validation, a save already pending) are printed here.
func (a *App) submit(ctx context.Context, fields models.EmployeeFields) {
	save := a.collection.StartSubmit(fields)
	a.async(func() {
		err := save(ctx)
		switch {
		case errors.Is(err, common.ErrorValidation):
			a.out.Printf("Not saved: %s. Use 'submit' to fix it or 'cancel'.\n", strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": "))
		case errors.Is(err, roster.ErrSubmitInProgress):
			a.out.Println("Not saved: " + err.Error() + ".")
		}
	})
}

func describe(op roster.Op) string {
	switch {
	case op.Phase != roster.PhaseSettled:
		return op.Phase.String()
	case op.Err != nil:
		return "failed: " + op.Err.Error()
	default:
		return "ok"
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
