package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boolen-kitchen/api/internal/enum"
	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/store"
)

// Errors returned by the hours service.
var (
	ErrHoursIncomplete = errors.New("business hours must cover all seven days")
	ErrUnknownDay      = errors.New("unknown day")
	ErrInvalidClock    = errors.New("invalid time of day")
)

// HoursService owns the per-weekday opening hours. The record is stored
// and served but deliberately not consulted at checkout; out-of-hours
// ordering is not blocked.
type HoursService struct {
	store store.Store
}

// NewHoursService creates a new HoursService.
func NewHoursService(st store.Store) *HoursService {
	return &HoursService{store: st}
}

// Hours returns the stored opening hours, seeded to 11:00-21:00 every day
// when none have been saved yet.
func (s *HoursService) Hours(ctx context.Context) (model.BusinessHours, error) {
	var out model.BusinessHours
	err := s.store.View(ctx, func(doc *store.Document) error {
		out = doc.Hours
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Replace validates and atomically overwrites the opening hours.
func (s *HoursService) Replace(ctx context.Context, h model.BusinessHours) error {
	if err := validateHours(h); err != nil {
		return err
	}
	return s.store.Update(ctx, func(doc *store.Document) error {
		doc.Hours = h
		return nil
	})
}

func validateHours(h model.BusinessHours) error {
	for day := range h {
		if !isWeekday(day) {
			return fmt.Errorf("%q: %w", day, ErrUnknownDay)
		}
	}
	for _, day := range enum.Weekdays {
		dh, ok := h[day]
		if !ok {
			return fmt.Errorf("%s missing: %w", day, ErrHoursIncomplete)
		}
		if dh.Closed {
			continue
		}
		if !isClock(dh.Open) {
			return fmt.Errorf("%s open %q: %w", day, dh.Open, ErrInvalidClock)
		}
		if !isClock(dh.Close) {
			return fmt.Errorf("%s close %q: %w", day, dh.Close, ErrInvalidClock)
		}
	}
	return nil
}

func isWeekday(day string) bool {
	for _, d := range enum.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func isClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
