package payments

import (
	"context"
	"fmt"
	"time"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/navigation"
	"laundryadmin/internal/view"
)

type Service struct {
	studios  StudioLookup
	payments PaymentRepository
	now      func() time.Time
}

func NewService(studios StudioLookup, payments PaymentRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{studios: studios, payments: payments, now: now}
}

type ListResult struct {
	Studio  domain.Studio       `json:"studio"`
	Items   []domain.Payment    `json:"items"`
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
	Summary view.PaymentSummary `json:"summary"`
}

// List returns one page of the studio's filtered payments. The summary covers
// the studio's whole history, not just the filtered rows.
func (s *Service) List(ctx context.Context, studioID int64, f view.PaymentFilter, p view.Page) (*ListResult, error) {
	studio, all, err := s.history(ctx, studioID)
	if err != nil {
		return nil, err
	}

	p = p.Normalize()
	items, total := view.Paginate(view.Payments(all, f, s.now()), p)
	return &ListResult{
		Studio:  studio,
		Items:   items,
		Total:   total,
		Page:    p.Page,
		Limit:   p.Limit,
		Summary: view.PaymentSummaryOf(all),
	}, nil
}

func (s *Service) Export(ctx context.Context, studioID int64, f view.PaymentFilter) (domain.Studio, []domain.Payment, error) {
	studio, all, err := s.history(ctx, studioID)
	if err != nil {
		return domain.Studio{}, nil, err
	}
	return studio, view.Payments(all, f, s.now()), nil
}

// RecordBulk marks the selected pending payments as paid under one reference.
func (s *Service) RecordBulk(ctx context.Context, studioID int64, ids []int64, reference string) ([]domain.Payment, error) {
	if _, _, err := s.history(ctx, studioID); err != nil {
		return nil, err
	}
	recorded, err := s.payments.RecordBulk(ctx, studioID, ids, reference)
	if err != nil {
		return nil, err
	}
	navigation.Success(ctx, fmt.Sprintf("%d payment(s) recorded", len(recorded)))
	return recorded, nil
}

func (s *Service) history(ctx context.Context, studioID int64) (domain.Studio, []domain.Payment, error) {
	studio, err := s.studios.Get(studioID)
	if err != nil {
		navigation.From(ctx).Redirect("/studios")
		navigation.Error(ctx, "Studio not found")
		return domain.Studio{}, nil, err
	}
	items, err := s.payments.BelongsTo(ctx, studioID)
	if err != nil {
		return domain.Studio{}, nil, err
	}
	return studio, items, nil
}
