package service

import (
	"context"

	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/store"
)

// Apply folds one newly created order total into the running summary.
// Revenue and average are rounded to two decimal places at every update so
// the aggregate never accumulates float drift.
func Apply(s model.FinancialSummary, total model.Money) model.FinancialSummary {
	s.TotalOrders++
	s.TotalRevenue = s.TotalRevenue.Add(total).Round2()
	s.AvgOrderValue = s.TotalRevenue.DivInt(s.TotalOrders).Round2()
	return s
}

// Recompute rebuilds the summary from the full order set. This is the
// canonical definition of the financial aggregate; the incremental Apply
// path is an optimization that can drift after administrative deletes and
// is reconciled against this.
func Recompute(orders []model.Order) model.FinancialSummary {
	var s model.FinancialSummary
	var revenue model.Money
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}
	s.TotalOrders = len(orders)
	s.TotalRevenue = revenue.Round2()
	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue.DivInt(s.TotalOrders).Round2()
	}
	return s
}

// FinanceService serves and repairs the financial summary.
type FinanceService struct {
	store store.Store
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(st store.Store) *FinanceService {
	return &FinanceService{store: st}
}

// Summary returns the current running aggregate.
func (s *FinanceService) Summary(ctx context.Context) (model.FinancialSummary, error) {
	var out model.FinancialSummary
	err := s.store.View(ctx, func(doc *store.Document) error {
		out = doc.Financials
		return nil
	})
	if err != nil {
		return model.FinancialSummary{}, err
	}
	return out, nil
}

// RecomputeSummary rebuilds the aggregate from the stored orders and
// persists it, repairing any drift left by order deletions.
func (s *FinanceService) RecomputeSummary(ctx context.Context) (model.FinancialSummary, error) {
	var out model.FinancialSummary
	err := s.store.Update(ctx, func(doc *store.Document) error {
		doc.Financials = Recompute(doc.Orders)
		out = doc.Financials
		return nil
	})
	if err != nil {
		return model.FinancialSummary{}, err
	}
	return out, nil
}
