package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/store"
	"laundryadmin/internal/view"
)

// CustomerRepository is read-only: the console has no customer mutation path.
type CustomerRepository struct {
	col *Collection[domain.Customer]
}

func NewCustomerRepository(st store.Store, log *zap.Logger) *CustomerRepository {
	return &CustomerRepository{col: NewCollection(KeyUsers, st, DefaultCustomers, log)}
}

func (r *CustomerRepository) Init(ctx context.Context) error  { return r.col.Init(ctx) }
func (r *CustomerRepository) Reset(ctx context.Context) error { return r.col.Reset(ctx) }

func (r *CustomerRepository) List() []domain.Customer { return r.col.List() }

func (r *CustomerRepository) Get(id int64) (domain.Customer, error) {
	c, ok := r.col.Find(id)
	if !ok {
		return domain.Customer{}, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return c, nil
}

func (r *CustomerRepository) FilteredView(f view.CustomerFilter) []domain.Customer {
	return view.Customers(r.col.List(), f)
}

func (r *CustomerRepository) Stats() view.CustomerStats {
	return view.CustomerStatsOf(r.col.List())
}
