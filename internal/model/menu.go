package model

import "encoding/json"

// Menu is a named, day-and-time scoped grouping of categories, e.g.
// "Lunch Menu", Mon-Fri 11:00-14:00.
type Menu struct {
	ID         ID         `json:"id"`
	Name       string     `json:"name"`
	Days       []string   `json:"days"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Categories []Category `json:"categories"`
}

// Category is a named grouping of items within a menu. Deleting a category
// takes its items with it; the full-replace write model makes that cascade
// automatic.
type Category struct {
	ID    ID         `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is a sellable catalog entry. Its id is stable across edits so
// cart lines and order snapshots keep referencing the same item.
type MenuItem struct {
	ID             ID              `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DeliveryPrice  Money           `json:"deliveryPrice"`
	PickupPrice    Money           `json:"pickupPrice"`
	Image          string          `json:"image,omitempty"`
	ModifierGroups []ModifierGroup `json:"modifierGroups"`
	Available      bool            `json:"available"`
}

// UnmarshalJSON defaults availability to true when the field is absent.
// Items written before availability existed would otherwise all decode as
// unavailable.
func (it *MenuItem) UnmarshalJSON(data []byte) error {
	type alias MenuItem
	aux := struct {
		*alias
		Available *bool `json:"available"`
	}{alias: (*alias)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Available == nil {
		it.Available = true
	} else {
		it.Available = *aux.Available
	}
	return nil
}

// ModifierGroup is a set of add-on choices attached to a menu item.
type ModifierGroup struct {
	ID      ID               `json:"id"`
	Name    string           `json:"name"`
	Options []ModifierOption `json:"options"`
}

// ModifierOption is one choice within a group, with an optional surcharge.
type ModifierOption struct {
	Name       string `json:"name"`
	PriceDelta Money  `json:"priceDelta"`
}
