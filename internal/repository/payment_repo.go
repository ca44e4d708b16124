package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/store"
)

// PaymentRepository stores payments of every studio in one collection; each
// payment points at its studio through StudioID.
type PaymentRepository struct {
	col *Collection[domain.Payment]
	now func() time.Time
}

func NewPaymentRepository(st store.Store, log *zap.Logger, now func() time.Time) *PaymentRepository {
	if now == nil {
		now = time.Now
	}
	return &PaymentRepository{
		col: NewCollection[domain.Payment](KeyPayments, st, nil, log),
		now: now,
	}
}

func (r *PaymentRepository) Init(ctx context.Context) error  { return r.col.Init(ctx) }
func (r *PaymentRepository) Reset(ctx context.Context) error { return r.col.Reset(ctx) }

func (r *PaymentRepository) Subscribe(fn func(ChangeEvent)) func() { return r.col.Subscribe(fn) }

// BelongsTo returns the payments of one studio. A studio without history gets
// its mock history generated and persisted on first access. The caller is
// responsible for checking that the studio exists.
func (r *PaymentRepository) BelongsTo(ctx context.Context, studioID int64) ([]domain.Payment, error) {
	if got := ofStudio(r.col.List(), studioID); len(got) > 0 {
		return got, nil
	}

	err := r.col.Mutate(ctx, ActionCreated, func(items []domain.Payment) ([]domain.Payment, []int64, error) {
		if len(ofStudio(items, studioID)) > 0 {
			return nil, nil, errUnchanged
		}
		mock := MockPayments(studioID, r.now())
		ids := make([]int64, 0, len(mock))
		for _, p := range mock {
			ids = append(ids, p.ID)
		}
		return append(items, mock...), ids, nil
	})
	if err != nil {
		return nil, err
	}
	return ofStudio(r.col.List(), studioID), nil
}

// RecordBulk marks every listed payment Completed with the same reference.
// Either all listed payments are updated in one write or none is.
func (r *PaymentRepository) RecordBulk(ctx context.Context, studioID int64, ids []int64, reference string) ([]domain.Payment, error) {
	reference = strings.TrimSpace(reference)
	if len(ids) == 0 {
		return nil, NewValidationError("paymentIds", "select at least one payment")
	}
	if reference == "" {
		return nil, NewValidationError("reference", "required")
	}

	var recorded []domain.Payment
	err := r.col.Mutate(ctx, ActionUpdated, func(items []domain.Payment) ([]domain.Payment, []int64, error) {
		index := make(map[int64]int, len(items))
		for i, p := range items {
			if p.StudioID == studioID {
				index[p.ID] = i
			}
		}

		seen := make(map[int64]bool, len(ids))
		for _, id := range ids {
			i, ok := index[id]
			if !ok {
				return nil, nil, fmt.Errorf("payment %d of studio %d: %w", id, studioID, ErrNotFound)
			}
			if items[i].Status == domain.PaymentCompleted {
				return nil, nil, NewValidationError("paymentIds", fmt.Sprintf("payment %d is already completed", id))
			}
			if seen[id] {
				return nil, nil, NewValidationError("paymentIds", fmt.Sprintf("payment %d listed twice", id))
			}
			seen[id] = true
		}

		paidAt := r.now().UTC()
		touched := make([]int64, 0, len(ids))
		for _, id := range ids {
			p := &items[index[id]]
			p.Status = domain.PaymentCompleted
			p.Reference = reference
			p.PaidAt = &paidAt
			recorded = append(recorded, *p)
			touched = append(touched, id)
		}
		return items, touched, nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// DeleteForStudio drops every payment of a studio and reports how many went.
func (r *PaymentRepository) DeleteForStudio(ctx context.Context, studioID int64) (int, error) {
	removed := 0
	err := r.col.Mutate(ctx, ActionDeleted, func(items []domain.Payment) ([]domain.Payment, []int64, error) {
		kept := items[:0]
		var ids []int64
		for _, p := range items {
			if p.StudioID == studioID {
				ids = append(ids, p.ID)
				continue
			}
			kept = append(kept, p)
		}
		if len(ids) == 0 {
			return nil, nil, errUnchanged
		}
		removed = len(ids)
		return kept, ids, nil
	})
	return removed, err
}

func ofStudio(items []domain.Payment, studioID int64) []domain.Payment {
	var out []domain.Payment
	for _, p := range items {
		if p.StudioID == studioID {
			out = append(out, p)
		}
	}
	return out
}
