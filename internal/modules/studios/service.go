package studios

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/navigation"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/view"
)

const ListPath = "/studios"

type Service struct {
	studios  StudioRepository
	payments PaymentCleaner
	catalog  CatalogCleaner
	cascade  bool
	log      *zap.Logger
}

// NewService wires the studio intents. With cascade set, deleting a studio also
// deletes its payments and service catalog; payments and catalog may be nil otherwise.
func NewService(studios StudioRepository, payments PaymentCleaner, catalog CatalogCleaner, cascade bool, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		studios:  studios,
		payments: payments,
		catalog:  catalog,
		cascade:  cascade,
		log:      log,
	}
}

type ListResult struct {
	Items []domain.Studio  `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Stats view.StudioStats `json:"stats"`
}

func (s *Service) List(f view.StudioFilter, p view.Page) (*ListResult, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrValidation, err)
	}
	p = p.Normalize()
	items, total := view.Paginate(s.studios.FilteredView(f), p)
	return &ListResult{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Stats: s.studios.Stats(),
	}, nil
}

// Export returns the full filtered view without pagination.
func (s *Service) Export(f view.StudioFilter) ([]domain.Studio, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrValidation, err)
	}
	return s.studios.FilteredView(f), nil
}

// Get looks up a studio. Unknown ids send the user back to the studio list.
func (s *Service) Get(ctx context.Context, id int64) (domain.Studio, error) {
	st, err := s.studios.Get(id)
	if err != nil {
		notFound(ctx)
		return domain.Studio{}, err
	}
	return st, nil
}

func (s *Service) Create(ctx context.Context, in repository.NewStudio) (domain.Studio, error) {
	st, err := s.studios.Add(ctx, in)
	if err != nil {
		return domain.Studio{}, err
	}
	navigation.Success(ctx, "Studio added")
	return st, nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, active bool) (domain.Studio, error) {
	changed, err := s.studios.SetStatus(ctx, id, active)
	if err != nil {
		return domain.Studio{}, err
	}
	if !changed {
		notFound(ctx)
		return domain.Studio{}, fmt.Errorf("studio %d: %w", id, repository.ErrNotFound)
	}
	return s.studios.Get(id)
}

// Delete removes a studio and returns it for undo.
func (s *Service) Delete(ctx context.Context, id int64) (domain.Studio, error) {
	removed, err := s.studios.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			navigation.Error(ctx, "Studio not found")
		}
		return domain.Studio{}, err
	}

	if s.cascade {
		s.cascadeDelete(ctx, id)
	}
	navigation.Success(ctx, fmt.Sprintf("%s deleted", removed.StudioName))
	return removed, nil
}

// cascadeDelete is best effort; the studio is already gone.
func (s *Service) cascadeDelete(ctx context.Context, id int64) {
	if s.payments != nil {
		n, err := s.payments.DeleteForStudio(ctx, id)
		if err != nil {
			s.log.Warn("cascade delete of payments failed", zap.Int64("studio_id", id), zap.Error(err))
		} else if n > 0 {
			s.log.Info("cascade deleted payments", zap.Int64("studio_id", id), zap.Int("count", n))
		}
	}
	if s.catalog != nil {
		if err := s.catalog.DeleteForStudio(ctx, id); err != nil {
			s.log.Warn("cascade delete of services failed", zap.Int64("studio_id", id), zap.Error(err))
		}
	}
}

func (s *Service) Undo(ctx context.Context, st domain.Studio) (domain.Studio, error) {
	if err := s.studios.Undo(ctx, st); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			navigation.Error(ctx, "Cannot undo: the studio id is already in use")
		}
		return domain.Studio{}, err
	}
	navigation.Success(ctx, fmt.Sprintf("%s restored", st.StudioName))
	return s.studios.Get(st.ID)
}

func notFound(ctx context.Context) {
	navigation.From(ctx).Redirect(ListPath)
	navigation.Error(ctx, "Studio not found")
}
