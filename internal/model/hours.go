package model

import "github.com/boolen-kitchen/api/internal/enum"

// DayHours is one weekday's opening window.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BusinessHours maps every weekday to its opening window. A valid value
// always carries all seven days.
type BusinessHours map[string]DayHours

// DefaultHours opens every day 11:00-21:00.
func DefaultHours() BusinessHours {
	h := make(BusinessHours, len(enum.Weekdays))
	for _, day := range enum.Weekdays {
		h[day] = DayHours{Open: DefaultStartTime, Close: DefaultEndTime}
	}
	return h
}
