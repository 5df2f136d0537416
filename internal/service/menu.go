package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boolen-kitchen/api/internal/model"
	"github.com/boolen-kitchen/api/internal/store"
)

// Errors returned by the menu service.
var (
	ErrMenuNameRequired     = errors.New("menu name is required")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrItemNameRequired     = errors.New("item name is required")
	ErrModifierNameRequired = errors.New("modifier group name is required")
	ErrDuplicateID          = errors.New("duplicate id")
	ErrInvalidPrice         = errors.New("invalid price")
)

// MenuService owns the durable catalog. Edits are full replaces: the
// client sends the entire catalog, which makes category deletion cascade
// to items without any orphan tracking.
type MenuService struct {
	store store.Store

	// coerceInvalidPrices selects the forgiving data-entry behavior:
	// unparseable or negative price input becomes 0 instead of rejecting
	// the whole catalog write.
	coerceInvalidPrices bool
}

// NewMenuService creates a new MenuService.
func NewMenuService(st store.Store, coerceInvalidPrices bool) *MenuService {
	return &MenuService{store: st, coerceInvalidPrices: coerceInvalidPrices}
}

// Catalog returns the stored catalog. Legacy flat-category data upgrades
// transparently during decode; when that happens the upgraded shape is
// persisted so future reads see it directly.
func (s *MenuService) Catalog(ctx context.Context) (model.MenuCatalog, error) {
	var cat model.MenuCatalog
	err := s.store.View(ctx, func(doc *store.Document) error {
		cat = doc.Menu
		return nil
	})
	if err != nil {
		return model.MenuCatalog{}, err
	}
	if !cat.Migrated() {
		return cat, nil
	}

	err = s.store.Update(ctx, func(doc *store.Document) error {
		// Only persist our migration if the document still holds the
		// legacy shape; a concurrent writer may have replaced the catalog
		// in between.
		if doc.Menu.Migrated() {
			doc.Menu = cat
		}
		return nil
	})
	if err != nil {
		return model.MenuCatalog{}, err
	}
	return cat, nil
}

// Replace validates, normalizes, and atomically overwrites the catalog.
// Readers see either the old or the new catalog in full.
func (s *MenuService) Replace(ctx context.Context, cat model.MenuCatalog) (model.MenuCatalog, error) {
	normalized, err := s.normalize(cat)
	if err != nil {
		return model.MenuCatalog{}, err
	}
	err = s.store.Update(ctx, func(doc *store.Document) error {
		doc.Menu = normalized
		return nil
	})
	if err != nil {
		return model.MenuCatalog{}, err
	}
	return normalized, nil
}

// normalize trims names, assigns ids to new entities, enforces id
// uniqueness within each scope, and settles prices per the coercion
// policy. Menu availability days may be empty: the editor allows
// deselecting every day transiently, and a full replace persists whatever
// the edit session ended with.
func (s *MenuService) normalize(cat model.MenuCatalog) (model.MenuCatalog, error) {
	menuIDs := make(map[model.ID]bool)
	for mi := range cat.Menus {
		m := &cat.Menus[mi]
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			return model.MenuCatalog{}, ErrMenuNameRequired
		}
		if m.ID == "" {
			m.ID = model.NewID()
		}
		if menuIDs[m.ID] {
			return model.MenuCatalog{}, fmt.Errorf("menu %q: %w", m.ID, ErrDuplicateID)
		}
		menuIDs[m.ID] = true
		if m.StartTime == "" {
			m.StartTime = model.DefaultStartTime
		}
		if m.EndTime == "" {
			m.EndTime = model.DefaultEndTime
		}

		catIDs := make(map[model.ID]bool)
		for ci := range m.Categories {
			c := &m.Categories[ci]
			c.Name = strings.TrimSpace(c.Name)
			if c.Name == "" {
				return model.MenuCatalog{}, ErrCategoryNameRequired
			}
			if c.ID == "" {
				c.ID = model.NewID()
			}
			if catIDs[c.ID] {
				return model.MenuCatalog{}, fmt.Errorf("category %q: %w", c.ID, ErrDuplicateID)
			}
			catIDs[c.ID] = true

			itemIDs := make(map[model.ID]bool)
			for ii := range c.Items {
				it := &c.Items[ii]
				it.Name = strings.TrimSpace(it.Name)
				if it.Name == "" {
					return model.MenuCatalog{}, ErrItemNameRequired
				}
				if it.ID == "" {
					it.ID = model.NewID()
				}
				if itemIDs[it.ID] {
					return model.MenuCatalog{}, fmt.Errorf("item %q: %w", it.ID, ErrDuplicateID)
				}
				itemIDs[it.ID] = true

				var err error
				if it.DeliveryPrice, err = s.normalizePrice(it.DeliveryPrice); err != nil {
					return model.MenuCatalog{}, fmt.Errorf("item %q deliveryPrice: %w", it.Name, err)
				}
				if it.PickupPrice, err = s.normalizePrice(it.PickupPrice); err != nil {
					return model.MenuCatalog{}, fmt.Errorf("item %q pickupPrice: %w", it.Name, err)
				}

				for gi := range it.ModifierGroups {
					g := &it.ModifierGroups[gi]
					g.Name = strings.TrimSpace(g.Name)
					if g.Name == "" {
						return model.MenuCatalog{}, ErrModifierNameRequired
					}
					if g.ID == "" {
						g.ID = model.NewID()
					}
					// Blank option rows are editor templates, not data.
					opts := g.Options[:0]
					for _, opt := range g.Options {
						opt.Name = strings.TrimSpace(opt.Name)
						if opt.Name == "" {
							continue
						}
						if opt.PriceDelta, err = s.normalizePrice(opt.PriceDelta); err != nil {
							return model.MenuCatalog{}, fmt.Errorf("option %q priceDelta: %w", opt.Name, err)
						}
						opts = append(opts, opt)
					}
					g.Options = opts
				}
			}
		}
	}
	return cat, nil
}

func (s *MenuService) normalizePrice(m model.Money) (model.Money, error) {
	if m.Invalid() || m.IsNegative() {
		if s.coerceInvalidPrices {
			return model.Money{}, nil
		}
		return model.Money{}, ErrInvalidPrice
	}
	return m.Round2(), nil
}
