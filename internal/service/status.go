package service

import (
	"errors"

	"github.com/boolen-kitchen/api/internal/enum"
)

// Errors returned by the order state machine.
var (
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// IsTerminal reports whether no further transitions are allowed from s.
func IsTerminal(s string) bool {
	return s == enum.OrderStatusCompleted || s == enum.OrderStatusCancelled
}

// IsKnownStatus reports whether s is one of the defined order statuses.
func IsKnownStatus(s string) bool {
	if s == enum.OrderStatusCancelled {
		return true
	}
	for _, st := range enum.StatusFlow {
		if st == s {
			return true
		}
	}
	return false
}

// NextStatus returns the status that follows s in the linear flow.
// Terminal states and statuses outside the flow have no successor.
func NextStatus(s string) (string, error) {
	for i, st := range enum.StatusFlow {
		if st != s {
			continue
		}
		if i == len(enum.StatusFlow)-1 {
			return "", ErrInvalidTransition
		}
		return enum.StatusFlow[i+1], nil
	}
	if s == enum.OrderStatusCancelled {
		return "", ErrInvalidTransition
	}
	return "", ErrInvalidStatus
}

// ValidateTransition checks whether an order may move from one status to
// another. Allowed moves are a single step forward in the linear flow, or
// cancellation from any non-terminal state. Everything else is rejected:
// stage skips, backward moves, and any transition out of a terminal state.
func ValidateTransition(from, to string) error {
	if !IsKnownStatus(to) {
		return ErrInvalidStatus
	}
	if IsTerminal(from) {
		return ErrInvalidTransition
	}
	if to == enum.OrderStatusCancelled {
		return nil
	}
	next, err := NextStatus(from)
	if err != nil {
		return err
	}
	if to != next {
		return ErrInvalidTransition
	}
	return nil
}
