package catalog

import (
	"context"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/navigation"
	"laundryadmin/internal/repository"
)

type StudioRepository interface {
	Get(id int64) (domain.Studio, error)
	SetServiceCount(ctx context.Context, id int64, n int) (bool, error)
}

type CatalogRepository interface {
	Load(ctx context.Context, studioID int64) (domain.StudioCatalog, error)
	ToggleService(ctx context.Context, studioID int64, serviceID string) (domain.StudioCatalog, error)
	ToggleSubService(ctx context.Context, studioID int64, serviceID, subID string) (domain.StudioCatalog, error)
	SetSubServicePrices(ctx context.Context, studioID int64, serviceID, subID string, p repository.SubServicePrices) (domain.StudioCatalog, error)
	SetItemOverride(ctx context.Context, studioID int64, serviceID, subID, itemID string, o domain.ItemOverride) (domain.StudioCatalog, error)
	ResolveItems(studioID int64, serviceID, subID string) ([]domain.EffectiveItem, error)
}

type Service struct {
	studios StudioRepository
	catalog CatalogRepository
	log     *zap.Logger
}

func NewService(studios StudioRepository, catalog CatalogRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{studios: studios, catalog: catalog, log: log}
}

// Load returns the studio's service menu after the loader delay.
func (s *Service) Load(ctx context.Context, studioID int64) (domain.StudioCatalog, error) {
	if err := s.requireStudio(ctx, studioID); err != nil {
		return domain.StudioCatalog{}, err
	}
	return s.catalog.Load(ctx, studioID)
}

func (s *Service) ToggleService(ctx context.Context, studioID int64, serviceID string) (domain.StudioCatalog, error) {
	return s.edit(ctx, studioID, func() (domain.StudioCatalog, error) {
		return s.catalog.ToggleService(ctx, studioID, serviceID)
	})
}

func (s *Service) ToggleSubService(ctx context.Context, studioID int64, serviceID, subID string) (domain.StudioCatalog, error) {
	return s.edit(ctx, studioID, func() (domain.StudioCatalog, error) {
		return s.catalog.ToggleSubService(ctx, studioID, serviceID, subID)
	})
}

func (s *Service) SetPrices(ctx context.Context, studioID int64, serviceID, subID string, p repository.SubServicePrices) (domain.StudioCatalog, error) {
	return s.edit(ctx, studioID, func() (domain.StudioCatalog, error) {
		return s.catalog.SetSubServicePrices(ctx, studioID, serviceID, subID, p)
	})
}

func (s *Service) SetItemOverride(ctx context.Context, studioID int64, serviceID, subID, itemID string, o domain.ItemOverride) (domain.StudioCatalog, error) {
	return s.edit(ctx, studioID, func() (domain.StudioCatalog, error) {
		return s.catalog.SetItemOverride(ctx, studioID, serviceID, subID, itemID, o)
	})
}

func (s *Service) Items(ctx context.Context, studioID int64, serviceID, subID string) ([]domain.EffectiveItem, error) {
	if err := s.requireStudio(ctx, studioID); err != nil {
		return nil, err
	}
	return s.catalog.ResolveItems(studioID, serviceID, subID)
}

// edit runs fn and then stores the number of active services on the studio.
func (s *Service) edit(ctx context.Context, studioID int64, fn func() (domain.StudioCatalog, error)) (domain.StudioCatalog, error) {
	if err := s.requireStudio(ctx, studioID); err != nil {
		return domain.StudioCatalog{}, err
	}
	c, err := fn()
	if err != nil {
		return domain.StudioCatalog{}, err
	}
	if _, err := s.studios.SetServiceCount(ctx, studioID, c.ActiveServices()); err != nil {
		s.log.Warn("failed to update studio service count", zap.Int64("studio_id", studioID), zap.Error(err))
	}
	navigation.Success(ctx, "Services updated")
	return c, nil
}

func (s *Service) requireStudio(ctx context.Context, studioID int64) error {
	if _, err := s.studios.Get(studioID); err != nil {
		navigation.From(ctx).Redirect("/studios")
		navigation.Error(ctx, "Studio not found")
		return err
	}
	return nil
}
