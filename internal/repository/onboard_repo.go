package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/store"
	"laundryadmin/internal/view"
)

type OnboardRequestRepository struct {
	col *Collection[domain.OnboardRequest]
	now func() time.Time
}

func NewOnboardRequestRepository(st store.Store, log *zap.Logger, now func() time.Time) *OnboardRequestRepository {
	if now == nil {
		now = time.Now
	}
	seed := func() []domain.OnboardRequest { return DefaultOnboardRequests(now()) }
	return &OnboardRequestRepository{
		col: NewCollection(KeyOnboardRequests, st, seed, log),
		now: now,
	}
}

func (r *OnboardRequestRepository) Init(ctx context.Context) error  { return r.col.Init(ctx) }
func (r *OnboardRequestRepository) Reset(ctx context.Context) error { return r.col.Reset(ctx) }

func (r *OnboardRequestRepository) Subscribe(fn func(ChangeEvent)) func() {
	return r.col.Subscribe(fn)
}

func (r *OnboardRequestRepository) List() []domain.OnboardRequest { return r.col.List() }

func (r *OnboardRequestRepository) Get(id int64) (domain.OnboardRequest, error) {
	req, ok := r.col.Find(id)
	if !ok {
		return domain.OnboardRequest{}, fmt.Errorf("onboard request %d: %w", id, ErrNotFound)
	}
	return req, nil
}

func (r *OnboardRequestRepository) FilteredView(f view.RequestFilter) []domain.OnboardRequest {
	return view.Requests(r.col.List(), f, r.now())
}

func (r *OnboardRequestRepository) Stats() view.RequestStats {
	return view.RequestStatsOf(r.col.List())
}

// HandleStatusChange moves a request to any status; there are no transition rules.
func (r *OnboardRequestRepository) HandleStatusChange(ctx context.Context, id int64, status domain.RequestStatus) error {
	if !status.Valid() {
		return NewValidationError("status", "must be one of pending, approved, rejected")
	}
	changed, err := r.col.Update(ctx, id, func(req *domain.OnboardRequest) error {
		req.Status = status
		return nil
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("onboard request %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *OnboardRequestRepository) Delete(ctx context.Context, id int64) (domain.OnboardRequest, error) {
	return r.col.Remove(ctx, id)
}

func (r *OnboardRequestRepository) Undo(ctx context.Context, req domain.OnboardRequest) error {
	return r.col.Restore(ctx, req)
}
