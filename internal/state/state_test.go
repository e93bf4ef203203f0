package state

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/store"
)

func newLoaded(t *testing.T, st store.Store) *AppState {
	t.Helper()

	app := New(st)
	if err := app.Load(context.Background()); err != nil {
		t.Fatalf("load state: %v", err)
	}
	return app
}

func TestLoad_SeedsDefaults(t *testing.T) {
	app := newLoaded(t, store.NewMemory())

	if got := len(app.Services()); got != 5 {
		t.Fatalf("expected 5 seeded services, got %d", got)
	}

	hours := app.Hours()
	if len(hours) != 7 {
		t.Fatalf("expected 7 business-hours rows, got %d", len(hours))
	}
	for i, h := range hours {
		if h.Day != i {
			t.Fatalf("expected row %d to cover day %d, got %d", i, i, h.Day)
		}
	}
	if hours[0].IsOpen {
		t.Fatal("expected Sunday to be seeded closed")
	}

	if got := len(app.Appointments()); got != 0 {
		t.Fatalf("expected empty appointment log, got %d", got)
	}
	if got := len(app.Barbers()); got != 0 {
		t.Fatalf("expected empty barber registry, got %d", got)
	}
}

func TestWriteThrough_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	app := newLoaded(t, st)
	ap := models.Appointment{
		ID:       "ap-1",
		ClientID: "c-1",
		Date:     "2026-01-05",
		Time:     "09:00",
		Status:   "PENDING",
	}
	if err := app.AddAppointment(ctx, ap); err != nil {
		t.Fatalf("add appointment: %v", err)
	}
	if err := app.SetCurrentUser(ctx, &models.User{ID: "c-1", Name: "Ana", Role: models.RoleClient}); err != nil {
		t.Fatalf("set current user: %v", err)
	}

	// A fresh controller over the same store sees everything.
	reloaded := newLoaded(t, st)
	if got := len(reloaded.Appointments()); got != 1 {
		t.Fatalf("expected 1 appointment after reload, got %d", got)
	}
	cur := reloaded.CurrentUser()
	if cur == nil || cur.ID != "c-1" {
		t.Fatalf("expected active session to survive reload, got %+v", cur)
	}
}

func TestDeleteService_LeavesAppointmentsDangling(t *testing.T) {
	ctx := context.Background()
	app := newLoaded(t, store.NewMemory())

	svc := app.Services()[0]
	ap := models.Appointment{ID: "ap-1", ServiceID: svc.ID, Date: "2026-01-05", Time: "09:00", Status: "PENDING"}
	if err := app.AddAppointment(ctx, ap); err != nil {
		t.Fatalf("add appointment: %v", err)
	}

	if err := app.DeleteService(ctx, svc.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}

	if _, ok := app.GetService(svc.ID); ok {
		t.Fatal("expected service to be gone")
	}
	got, ok := app.GetAppointment("ap-1")
	if !ok {
		t.Fatal("expected appointment to survive the catalog delete")
	}
	if got.ServiceID != svc.ID {
		t.Fatalf("expected dangling reference %q to be kept, got %q", svc.ID, got.ServiceID)
	}
}

func TestUpdateDay_TogglePreservesWindow(t *testing.T) {
	ctx := context.Background()
	app := newLoaded(t, store.NewMemory())

	before := app.Hours()[1]
	if !before.IsOpen {
		t.Fatal("expected Monday to be seeded open")
	}

	err := app.UpdateDay(ctx, 1, func(row *models.BusinessHours) {
		row.IsOpen = false
	})
	if err != nil {
		t.Fatalf("toggle day: %v", err)
	}

	after := app.Hours()[1]
	if after.IsOpen {
		t.Fatal("expected Monday to be closed")
	}
	if after.Start != before.Start || after.End != before.End {
		t.Fatalf("expected window %s-%s to be preserved, got %s-%s",
			before.Start, before.End, after.Start, after.End)
	}
}

func TestUpdateDay_UnknownDay(t *testing.T) {
	app := newLoaded(t, store.NewMemory())

	err := app.UpdateDay(context.Background(), 9, func(*models.BusinessHours) {})
	if err == nil {
		t.Fatal("expected an error for a day index outside 0..6")
	}
}

func TestAppointmentsForClient_SortedAscending(t *testing.T) {
	ctx := context.Background()
	app := newLoaded(t, store.NewMemory())

	for _, ap := range []models.Appointment{
		{ID: "b", ClientID: "c-1", Date: "2026-01-06", Time: "09:00", Status: "PENDING"},
		{ID: "c", ClientID: "c-2", Date: "2026-01-05", Time: "08:00", Status: "PENDING"},
		{ID: "a", ClientID: "c-1", Date: "2026-01-05", Time: "10:00", Status: "PENDING"},
		{ID: "d", ClientID: "c-1", Date: "2026-01-05", Time: "09:00", Status: "PENDING"},
	} {
		if err := app.AddAppointment(ctx, ap); err != nil {
			t.Fatalf("add appointment: %v", err)
		}
	}

	got := app.AppointmentsForClient("c-1")
	if len(got) != 3 {
		t.Fatalf("expected 3 appointments for c-1, got %d", len(got))
	}
	wantOrder := []string{"d", "a", "b"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("expected order %v, got %s at %d", wantOrder, got[i].ID, i)
		}
	}
}
