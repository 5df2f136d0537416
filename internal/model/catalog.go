package model

import (
	"bytes"
	"encoding/json"

	"github.com/boolen-kitchen/api/internal/enum"
)

// Defaults applied to migrated legacy data and to menus saved without an
// availability window.
const (
	DefaultMenuName  = "All Day Menu"
	DefaultStartTime = "11:00"
	DefaultEndTime   = "21:00"
)

// MenuCatalog is the merchant's full menu tree. Insertion order of menus
// defines display order.
type MenuCatalog struct {
	Menus []Menu

	migrated bool
}

// Migrated reports whether the catalog was upgraded from the legacy
// flat-category shape during decoding. Callers on the read path persist
// the upgraded shape so future reads see it directly.
func (c *MenuCatalog) Migrated() bool { return c.migrated }

// MarshalJSON always emits the wrapped {"menus": [...]} shape, which is
// what makes the legacy migration a one-time event.
func (c MenuCatalog) MarshalJSON() ([]byte, error) {
	menus := c.Menus
	if menus == nil {
		menus = []Menu{}
	}
	return json.Marshal(struct {
		Menus []Menu `json:"menus"`
	}{Menus: menus})
}

// UnmarshalJSON accepts three shapes:
//
//   - {"menus": [...]}: the current wrapped catalog
//   - [...] of menus: catalogs saved by clients that predate the wrapper
//   - [...] of categories: the legacy flat shape, which is wrapped in a
//     single default all-day menu without losing data
//
// Only the last case marks the catalog as migrated; re-decoding an already
// migrated catalog never wraps it again.
func (c *MenuCatalog) UnmarshalJSON(data []byte) error {
	*c = MenuCatalog{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '{' {
		var aux struct {
			Menus []Menu `json:"menus"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return err
		}
		c.Menus = aux.Menus
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	if len(raws) == 0 {
		return nil
	}

	if isMenuShape(raws[0]) {
		var menus []Menu
		if err := json.Unmarshal(data, &menus); err != nil {
			return err
		}
		c.Menus = menus
		return nil
	}

	var cats []Category
	if err := json.Unmarshal(data, &cats); err != nil {
		return err
	}
	c.Menus = []Menu{DefaultMenu(cats)}
	c.migrated = true
	return nil
}

// isMenuShape reports whether the array element carries a categories key,
// which only menus have. Legacy category objects carry items instead.
func isMenuShape(raw json.RawMessage) bool {
	var probe struct {
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Categories != nil
}

// DefaultMenu wraps categories in an all-day, all-week menu.
func DefaultMenu(cats []Category) Menu {
	return Menu{
		ID:         NewID(),
		Name:       DefaultMenuName,
		Days:       append([]string(nil), enum.ShortDays...),
		StartTime:  DefaultStartTime,
		EndTime:    DefaultEndTime,
		Categories: cats,
	}
}
