package model

// FinancialSummary is the running revenue aggregate maintained as a side
// effect of order creation. It is recomputable from the full order set;
// see service.Recompute for the canonical definition.
type FinancialSummary struct {
	TotalRevenue  Money `json:"totalRevenue"`
	TotalOrders   int   `json:"totalOrders"`
	AvgOrderValue Money `json:"avgOrderValue"`
}
