package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/validator"
	"laundryadmin/internal/store"
	"laundryadmin/internal/view"
)

// NewStudio is the input of the add-studio flow.
type NewStudio struct {
	StudioName string  `json:"studioName" validate:"required"`
	OwnerName  string  `json:"ownerName" validate:"required"`
	Contact    string  `json:"contact" validate:"required,min=10"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	Services   int     `json:"services" validate:"gte=0"`
	Status     bool    `json:"status"`
}

type StudioRepository struct {
	col *Collection[domain.Studio]
}

func NewStudioRepository(st store.Store, log *zap.Logger) *StudioRepository {
	return &StudioRepository{col: NewCollection(KeyStudios, st, DefaultStudios, log)}
}

func (r *StudioRepository) Init(ctx context.Context) error  { return r.col.Init(ctx) }
func (r *StudioRepository) Reset(ctx context.Context) error { return r.col.Reset(ctx) }

func (r *StudioRepository) Subscribe(fn func(ChangeEvent)) func() { return r.col.Subscribe(fn) }

func (r *StudioRepository) List() []domain.Studio { return r.col.List() }

func (r *StudioRepository) Get(id int64) (domain.Studio, error) {
	s, ok := r.col.Find(id)
	if !ok {
		return domain.Studio{}, fmt.Errorf("studio %d: %w", id, ErrNotFound)
	}
	return s, nil
}

func (r *StudioRepository) FilteredView(f view.StudioFilter) []domain.Studio {
	return view.Studios(r.col.List(), f)
}

func (r *StudioRepository) Stats() view.StudioStats {
	return view.StudioStatsOf(r.col.List())
}

// SetStatus flips the active flag of one studio. Unknown ids are a no-op.
func (r *StudioRepository) SetStatus(ctx context.Context, id int64, active bool) (bool, error) {
	return r.col.Update(ctx, id, func(s *domain.Studio) error {
		s.Status = active
		return nil
	})
}

func (r *StudioRepository) SetServiceCount(ctx context.Context, id int64, n int) (bool, error) {
	return r.col.Update(ctx, id, func(s *domain.Studio) error {
		s.Services = n
		return nil
	})
}

func (r *StudioRepository) Delete(ctx context.Context, id int64) (domain.Studio, error) {
	return r.col.Remove(ctx, id)
}

// Undo re-inserts a deleted studio unless its id was reused in the meantime.
// The record is checked against the same rules as Add.
func (r *StudioRepository) Undo(ctx context.Context, s domain.Studio) error {
	if errs := validator.Validate(&NewStudio{
		StudioName: strings.TrimSpace(s.StudioName),
		OwnerName:  strings.TrimSpace(s.OwnerName),
		Contact:    strings.TrimSpace(s.Contact),
		Rating:     s.Rating,
		Services:   s.Services,
		Status:     s.Status,
	}); errs != nil {
		return &ValidationError{Fields: errs}
	}
	if s.StudioID == "" {
		s.StudioID = domain.StudioCode(s.ID)
	}
	return r.col.Restore(ctx, s)
}

// Add validates in and appends a studio with a fresh id.
func (r *StudioRepository) Add(ctx context.Context, in NewStudio) (domain.Studio, error) {
	in.StudioName = strings.TrimSpace(in.StudioName)
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.Contact = strings.TrimSpace(in.Contact)
	if errs := validator.Validate(&in); errs != nil {
		return domain.Studio{}, &ValidationError{Fields: errs}
	}

	var created domain.Studio
	err := r.col.Mutate(ctx, ActionCreated, func(items []domain.Studio) ([]domain.Studio, []int64, error) {
		id := r.col.issueID()
		created = domain.Studio{
			ID:         id,
			StudioID:   domain.StudioCode(id),
			StudioName: in.StudioName,
			OwnerName:  in.OwnerName,
			Contact:    in.Contact,
			Services:   in.Services,
			Rating:     in.Rating,
			Status:     in.Status,
		}
		return append(items, created), []int64{id}, nil
	})
	return created, err
}
