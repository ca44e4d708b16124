package studios

import (
	"context"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/view"
)

type StudioRepository interface {
	List() []domain.Studio
	Get(id int64) (domain.Studio, error)
	FilteredView(f view.StudioFilter) []domain.Studio
	Stats() view.StudioStats
	SetStatus(ctx context.Context, id int64, active bool) (bool, error)
	Delete(ctx context.Context, id int64) (domain.Studio, error)
	Undo(ctx context.Context, s domain.Studio) error
	Add(ctx context.Context, in repository.NewStudio) (domain.Studio, error)
}

// PaymentCleaner and CatalogCleaner are used when deletes cascade.
type PaymentCleaner interface {
	DeleteForStudio(ctx context.Context, studioID int64) (int, error)
}

type CatalogCleaner interface {
	DeleteForStudio(ctx context.Context, studioID int64) error
}
