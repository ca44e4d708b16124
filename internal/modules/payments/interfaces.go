package payments

import (
	"context"

	"laundryadmin/internal/domain"
)

type StudioLookup interface {
	Get(id int64) (domain.Studio, error)
}

type PaymentRepository interface {
	BelongsTo(ctx context.Context, studioID int64) ([]domain.Payment, error)
	RecordBulk(ctx context.Context, studioID int64, ids []int64, reference string) ([]domain.Payment, error)
}
