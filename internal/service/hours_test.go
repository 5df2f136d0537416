package service

import (
	"context"
	"errors"
	"testing"

	"github.com/boolen-kitchen/api/internal/model"
)

func weekOf(open, close string) model.BusinessHours {
	h := make(model.BusinessHours, 7)
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		h[day] = model.DayHours{Open: open, Close: close}
	}
	return h
}

func TestHoursSeededByDefault(t *testing.T) {
	svc := NewHoursService(newTestStore(t))

	got, err := svc.Hours(context.Background())
	if err != nil {
		t.Fatalf("hours: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected all seven days, got %d", len(got))
	}
	if got["Monday"].Open != "11:00" || got["Monday"].Close != "21:00" {
		t.Fatalf("Monday = %+v, want 11:00-21:00", got["Monday"])
	}
}

func TestReplaceHoursRoundTrips(t *testing.T) {
	svc := NewHoursService(newTestStore(t))
	ctx := context.Background()

	h := weekOf("09:30", "22:00")
	h["Sunday"] = model.DayHours{Closed: true}
	if err := svc.Replace(ctx, h); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := svc.Hours(ctx)
	if err != nil {
		t.Fatalf("hours: %v", err)
	}
	if got["Friday"].Open != "09:30" || got["Friday"].Close != "22:00" {
		t.Fatalf("Friday = %+v", got["Friday"])
	}
	if !got["Sunday"].Closed {
		t.Fatal("Sunday not closed")
	}
}

func TestReplaceHoursValidation(t *testing.T) {
	svc := NewHoursService(newTestStore(t))
	ctx := context.Background()

	missing := weekOf("11:00", "21:00")
	delete(missing, "Wednesday")
	if err := svc.Replace(ctx, missing); !errors.Is(err, ErrHoursIncomplete) {
		t.Fatalf("missing day: got %v, want ErrHoursIncomplete", err)
	}

	unknown := weekOf("11:00", "21:00")
	unknown["Funday"] = model.DayHours{Open: "11:00", Close: "21:00"}
	if err := svc.Replace(ctx, unknown); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("unknown day: got %v, want ErrUnknownDay", err)
	}

	badClock := weekOf("11:00", "21:00")
	badClock["Monday"] = model.DayHours{Open: "25:00", Close: "21:00"}
	if err := svc.Replace(ctx, badClock); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("bad clock: got %v, want ErrInvalidClock", err)
	}

	// Closed days skip the clock check entirely.
	closed := weekOf("11:00", "21:00")
	closed["Monday"] = model.DayHours{Closed: true}
	if err := svc.Replace(ctx, closed); err != nil {
		t.Fatalf("closed day rejected: %v", err)
	}
}
