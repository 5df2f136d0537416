// Package store persists the application state as a single document with
// four top-level collections (menu, orders, hours, financials), the layout
// written by earlier versions of the system. Two backends exist: a JSON
// file compatible with legacy data files, and a Postgres JSONB row.
package store

import (
	"context"
	"errors"

	"github.com/boolen-kitchen/api/internal/model"
)

// ErrUnavailable wraps any storage read/write failure. Callers abort the
// mutation entirely; no partial write is ever observable.
var ErrUnavailable = errors.New("storage unavailable")

// Document is the full persisted state.
type Document struct {
	Menu       model.MenuCatalog      `json:"menu"`
	Orders     []model.Order          `json:"orders"`
	OrderSeq   int64                  `json:"orderSeq"`
	Hours      model.BusinessHours    `json:"hours"`
	Financials model.FinancialSummary `json:"financials"`
}

// seedDefaults fills collections an empty or legacy document is missing,
// mirroring the legacy init path.
func (d *Document) seedDefaults() {
	if len(d.Hours) == 0 {
		d.Hours = model.DefaultHours()
	}
	if d.Orders == nil {
		d.Orders = []model.Order{}
	}
}

// Store is a serialized read-modify-write document store.
type Store interface {
	// View runs fn against a snapshot of the document. fn must not retain
	// the document past its return.
	View(ctx context.Context, fn func(doc *Document) error) error

	// Update runs fn against the document and persists the result
	// atomically: readers see either the old or the new document in full.
	// If fn returns an error nothing is written and that error is returned
	// unwrapped.
	Update(ctx context.Context, fn func(doc *Document) error) error
}
