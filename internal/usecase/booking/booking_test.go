package booking

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barberflow/internal/audit"
	"github.com/BruksfildServices01/barberflow/internal/domain/schedule"
	"github.com/BruksfildServices01/barberflow/internal/httperr"
	"github.com/BruksfildServices01/barberflow/internal/state"
	"github.com/BruksfildServices01/barberflow/internal/store"
)

// 2026-01-05 is a Monday, 2026-01-04 a Sunday (seeded closed).
const (
	monday = "2026-01-05"
	sunday = "2026-01-04"
)

func newApp(t *testing.T) (*state.AppState, *audit.Dispatcher) {
	t.Helper()

	st := store.NewMemory()
	app := state.New(st)
	if err := app.Load(context.Background()); err != nil {
		t.Fatalf("load state: %v", err)
	}
	return app, audit.NewDispatcher(audit.New(st))
}

func bookInput(app *state.AppState, date, hm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:    "c-1",
		ClientName:  "Ana",
		ClientPhone: "11911112222",
		ServiceID:   app.Services()[0].ID,
		Date:        date,
		Time:        hm,
	}
}

func TestCreateAppointment_Pending(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	uc := NewCreateAppointment(app, ad)

	ap, err := uc.Execute(ctx, bookInput(app, monday, "09:00"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if ap.ID == "" {
		t.Fatal("expected a generated id")
	}
	if ap.Status != string(schedule.StatusPending) {
		t.Fatalf("expected PENDING, got %q", ap.Status)
	}
	if ap.ClientName != "Ana" || ap.ClientPhone != "11911112222" {
		t.Fatalf("expected denormalized client fields, got %+v", ap)
	}

	stored, ok := app.GetAppointment(ap.ID)
	if !ok {
		t.Fatal("expected appointment in the log")
	}
	if stored.Date != monday || stored.Time != "09:00" {
		t.Fatalf("stored appointment mismatch: %+v", stored)
	}
}

func TestCreateAppointment_DanglingServiceAllowed(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	uc := NewCreateAppointment(app, ad)

	in := bookInput(app, monday, "09:00")
	in.ServiceID = "no-such-service"

	ap, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("expected unknown service id to be tolerated, got %v", err)
	}
	if ap.ServiceID != "no-such-service" {
		t.Fatalf("expected the reference to be stored as-is, got %q", ap.ServiceID)
	}
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	uc := NewCreateAppointment(app, ad)

	if _, err := uc.Execute(ctx, bookInput(app, monday, "09:00")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := uc.Execute(ctx, bookInput(app, monday, "09:00"))
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}

func TestCreateAppointment_ClosedDay(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	uc := NewCreateAppointment(app, ad)

	_, err := uc.Execute(ctx, bookInput(app, sunday, "09:00"))
	if !httperr.IsBusiness(err, "outside_business_hours") {
		t.Fatalf("expected outside_business_hours, got %v", err)
	}
}

func TestCreateAppointment_InvalidInput(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	uc := NewCreateAppointment(app, ad)

	in := bookInput(app, monday, "09:00")
	in.Time = ""
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "missing_fields") {
		t.Fatalf("expected missing_fields, got %v", err)
	}

	in = bookInput(app, "05/01/2026", "09:00")
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}

func TestCompleteAppointment_Terminal(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)

	ap, err := NewCreateAppointment(app, ad).Execute(ctx, bookInput(app, monday, "09:00"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	uc := NewCompleteAppointment(app, ad)
	done, err := uc.Execute(ctx, "b-1", ap.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != string(schedule.StatusCompleted) {
		t.Fatalf("expected COMPLETED, got %q", done.Status)
	}

	if _, err := uc.Execute(ctx, "b-1", ap.ID); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state on second completion, got %v", err)
	}
}

func TestCompleteAppointment_NotFound(t *testing.T) {
	app, ad := newApp(t)

	_, err := NewCompleteAppointment(app, ad).Execute(context.Background(), "b-1", "nope")
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelAppointment_KeepsRecordAndFreesSlot(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	createUC := NewCreateAppointment(app, ad)

	ap, err := createUC.Execute(ctx, bookInput(app, monday, "09:00"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	cancelled, err := NewCancelAppointment(app, ad).Execute(ctx, "b-1", ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != string(schedule.StatusCancelled) {
		t.Fatalf("expected CANCELLED, got %q", cancelled.Status)
	}

	// The record stays for history...
	if _, ok := app.GetAppointment(ap.ID); !ok {
		t.Fatal("expected cancelled appointment to stay in the log")
	}

	// ...and the slot opens up again.
	if _, err := createUC.Execute(ctx, bookInput(app, monday, "09:00")); err != nil {
		t.Fatalf("expected the freed slot to be bookable, got %v", err)
	}
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)

	uc := NewGetAvailability(app)

	slots, err := uc.Execute(ctx, sunday)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on the closed Sunday, got %v", slots)
	}

	if _, err := uc.Execute(ctx, "2026-13-40"); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	if _, err := NewCreateAppointment(app, ad).Execute(ctx, bookInput(app, monday, "10:00")); err != nil {
		t.Fatalf("book: %v", err)
	}
	slots, err = uc.Execute(ctx, monday)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Fatal("expected the booked slot to be excluded")
		}
	}
}

func TestGetDayStats(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	createUC := NewCreateAppointment(app, ad)

	first, err := createUC.Execute(ctx, bookInput(app, monday, "09:00"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := createUC.Execute(ctx, bookInput(app, monday, "09:30")); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := NewCompleteAppointment(app, ad).Execute(ctx, "b-1", first.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	stats := NewGetDayStats(app).Execute(ctx, monday)
	if stats.Total != 2 {
		t.Fatalf("expected 2 appointments, got %d", stats.Total)
	}
	if stats.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", stats.Completed)
	}
	if want := app.Services()[0].Price; stats.Revenue != want {
		t.Fatalf("expected revenue %.2f, got %.2f", want, stats.Revenue)
	}
}

func TestListDayAppointments_ResolvesServiceName(t *testing.T) {
	ctx := context.Background()
	app, ad := newApp(t)
	createUC := NewCreateAppointment(app, ad)

	svc := app.Services()[0]
	if _, err := createUC.Execute(ctx, bookInput(app, monday, "09:00")); err != nil {
		t.Fatalf("book: %v", err)
	}

	in := bookInput(app, monday, "09:30")
	in.ServiceID = "ghost"
	if _, err := createUC.Execute(ctx, in); err != nil {
		t.Fatalf("book dangling: %v", err)
	}

	views := NewListDayAppointments(app).Execute(ctx, monday)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].ServiceName != svc.Name {
		t.Fatalf("expected %q, got %q", svc.Name, views[0].ServiceName)
	}
	if views[1].ServiceName == "" || views[1].ServiceName == "ghost" {
		t.Fatalf("expected a fallback label for the dangling service, got %q", views[1].ServiceName)
	}
}
