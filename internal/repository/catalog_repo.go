package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/validator"
	"laundryadmin/internal/store"
)

// SubServicePrices replaces the per-unit and per-item prices of a sub-service.
type SubServicePrices struct {
	PricePerUnitStandard float64 `json:"pricePerUnitStandard" validate:"gte=0"`
	PricePerUnitExpress  float64 `json:"pricePerUnitExpress" validate:"gte=0"`
	PricePerItemStandard float64 `json:"pricePerItemStandard" validate:"gte=0"`
	PricePerItemExpress  float64 `json:"pricePerItemExpress" validate:"gte=0"`
}

// CatalogRepository holds the service menu of every studio under one key.
type CatalogRepository struct {
	col   *Collection[domain.StudioCatalog]
	items []domain.ClothingItem
	delay time.Duration
}

// NewCatalogRepository builds the studio services loader. delay is an
// artificial latency applied to Load; it is not retried.
func NewCatalogRepository(st store.Store, log *zap.Logger, delay time.Duration) *CatalogRepository {
	return &CatalogRepository{
		col:   NewCollection[domain.StudioCatalog](KeyStudioServices, st, nil, log),
		items: DefaultClothingItems(),
		delay: delay,
	}
}

func (r *CatalogRepository) Init(ctx context.Context) error  { return r.col.Init(ctx) }
func (r *CatalogRepository) Reset(ctx context.Context) error { return r.col.Reset(ctx) }

func (r *CatalogRepository) Subscribe(fn func(ChangeEvent)) func() { return r.col.Subscribe(fn) }

// Load waits for the configured delay, then returns the studio's catalog,
// creating the default menu on first access.
func (r *CatalogRepository) Load(ctx context.Context, studioID int64) (domain.StudioCatalog, error) {
	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return domain.StudioCatalog{}, ctx.Err()
		}
	}

	if c, ok := r.col.Find(studioID); ok {
		return cloneCatalog(c), nil
	}

	var out domain.StudioCatalog
	err := r.col.Mutate(ctx, ActionCreated, func(items []domain.StudioCatalog) ([]domain.StudioCatalog, []int64, error) {
		for _, c := range items {
			if c.StudioID == studioID {
				out = cloneCatalog(c)
				return nil, nil, errUnchanged
			}
		}
		out = domain.StudioCatalog{StudioID: studioID, Services: DefaultServices()}
		return append(items, cloneCatalog(out)), []int64{studioID}, nil
	})
	return out, err
}

func (r *CatalogRepository) ToggleService(ctx context.Context, studioID int64, serviceID string) (domain.StudioCatalog, error) {
	return r.edit(ctx, studioID, func(c *domain.StudioCatalog) error {
		svc, err := findService(c, serviceID)
		if err != nil {
			return err
		}
		svc.Active = !svc.Active
		return nil
	})
}

func (r *CatalogRepository) ToggleSubService(ctx context.Context, studioID int64, serviceID, subID string) (domain.StudioCatalog, error) {
	return r.edit(ctx, studioID, func(c *domain.StudioCatalog) error {
		sub, err := findSubService(c, serviceID, subID)
		if err != nil {
			return err
		}
		sub.Active = !sub.Active
		return nil
	})
}

func (r *CatalogRepository) SetSubServicePrices(ctx context.Context, studioID int64, serviceID, subID string, p SubServicePrices) (domain.StudioCatalog, error) {
	if err := validatePrices(p); err != nil {
		return domain.StudioCatalog{}, err
	}
	return r.edit(ctx, studioID, func(c *domain.StudioCatalog) error {
		sub, err := findSubService(c, serviceID, subID)
		if err != nil {
			return err
		}
		sub.PricePerUnitStandard = p.PricePerUnitStandard
		sub.PricePerUnitExpress = p.PricePerUnitExpress
		sub.PricePerItemStandard = p.PricePerItemStandard
		sub.PricePerItemExpress = p.PricePerItemExpress
		return nil
	})
}

// SetItemOverride stores a studio-level override of a clothing item for one sub-service.
func (r *CatalogRepository) SetItemOverride(ctx context.Context, studioID int64, serviceID, subID, itemID string, o domain.ItemOverride) (domain.StudioCatalog, error) {
	if !r.knownItem(itemID) {
		return domain.StudioCatalog{}, NewValidationError("itemId", "select a clothing item from the catalog")
	}
	if o.Active == nil && o.StandardPrice == nil && o.ExpressPrice == nil {
		return domain.StudioCatalog{}, NewValidationError("override", "set at least one of active, standardPrice, expressPrice")
	}
	if (o.StandardPrice != nil && *o.StandardPrice < 0) || (o.ExpressPrice != nil && *o.ExpressPrice < 0) {
		return domain.StudioCatalog{}, NewValidationError("price", "must not be negative")
	}

	return r.edit(ctx, studioID, func(c *domain.StudioCatalog) error {
		sub, err := findSubService(c, serviceID, subID)
		if err != nil {
			return err
		}
		if sub.Items == nil {
			sub.Items = make(map[string]domain.ItemOverride)
		}
		sub.Items[itemID] = o
		return nil
	})
}

// ResolveItems lists the catalog items with the sub-service's overrides applied.
func (r *CatalogRepository) ResolveItems(studioID int64, serviceID, subID string) ([]domain.EffectiveItem, error) {
	c, ok := r.col.Find(studioID)
	if !ok {
		c = domain.StudioCatalog{StudioID: studioID, Services: DefaultServices()}
	}
	sub, err := findSubService(&c, serviceID, subID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EffectiveItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, sub.Resolve(it))
	}
	return out, nil
}

// DeleteForStudio drops a studio's catalog. Missing catalogs are not an error.
func (r *CatalogRepository) DeleteForStudio(ctx context.Context, studioID int64) error {
	_, err := r.col.Remove(ctx, studioID)
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

func (r *CatalogRepository) edit(ctx context.Context, studioID int64, fn func(*domain.StudioCatalog) error) (domain.StudioCatalog, error) {
	var out domain.StudioCatalog
	err := r.col.Mutate(ctx, ActionUpdated, func(items []domain.StudioCatalog) ([]domain.StudioCatalog, []int64, error) {
		idx := -1
		for i := range items {
			if items[i].StudioID == studioID {
				idx = i
				break
			}
		}
		if idx < 0 {
			items = append(items, domain.StudioCatalog{StudioID: studioID, Services: DefaultServices()})
			idx = len(items) - 1
		}
		if err := fn(&items[idx]); err != nil {
			return nil, nil, err
		}
		out = cloneCatalog(items[idx])
		return items, []int64{studioID}, nil
	})
	return out, err
}

func (r *CatalogRepository) knownItem(id string) bool {
	for _, it := range r.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func findService(c *domain.StudioCatalog, serviceID string) (*domain.Service, error) {
	for i := range c.Services {
		if c.Services[i].ID == serviceID {
			return &c.Services[i], nil
		}
	}
	return nil, fmt.Errorf("service %q of studio %d: %w", serviceID, c.StudioID, ErrNotFound)
}

func findSubService(c *domain.StudioCatalog, serviceID, subID string) (*domain.SubService, error) {
	svc, err := findService(c, serviceID)
	if err != nil {
		return nil, err
	}
	for i := range svc.SubServices {
		if svc.SubServices[i].ID == subID {
			return &svc.SubServices[i], nil
		}
	}
	return nil, fmt.Errorf("sub-service %q of %q: %w", subID, serviceID, ErrNotFound)
}

func validatePrices(p SubServicePrices) error {
	if errs := validator.Validate(&p); errs != nil {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// cloneCatalog deep-copies through JSON so callers never share maps with the collection.
func cloneCatalog(c domain.StudioCatalog) domain.StudioCatalog {
	raw, err := json.Marshal(c)
	if err != nil {
		return c
	}
	var out domain.StudioCatalog
	if err := json.Unmarshal(raw, &out); err != nil {
		return c
	}
	return out
}
