package enum

// ── Order status state machine ──

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// StatusFlow is the linear progression an order moves through via advance.
// Cancellation branches off any non-terminal state and is not part of the flow.
var StatusFlow = []string{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
}

// ── Delivery types ──

const (
	DeliveryTypeBike   = "bike"
	DeliveryTypeDriver = "driver"
)

// ── Weekdays (business hours) ──

const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
	DaySunday    = "Sunday"
)

// Weekdays in calendar order. Business hours must carry all seven.
var Weekdays = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// ShortDays are the abbreviated day labels used by menu availability.
var ShortDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
