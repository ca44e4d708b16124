package users

import (
	"context"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/navigation"
	"laundryadmin/internal/view"
)

type CustomerRepository interface {
	Get(id int64) (domain.Customer, error)
	FilteredView(f view.CustomerFilter) []domain.Customer
	Stats() view.CustomerStats
}

type Service struct {
	customers CustomerRepository
}

func NewService(customers CustomerRepository) *Service {
	return &Service{customers: customers}
}

type ListResult struct {
	Items []domain.Customer  `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Stats view.CustomerStats `json:"stats"`
}

func (s *Service) List(f view.CustomerFilter, p view.Page) *ListResult {
	p = p.Normalize()
	items, total := view.Paginate(s.customers.FilteredView(f), p)
	return &ListResult{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Stats: s.customers.Stats(),
	}
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Customer, error) {
	c, err := s.customers.Get(id)
	if err != nil {
		navigation.From(ctx).Redirect("/users")
		navigation.Error(ctx, "User not found")
		return domain.Customer{}, err
	}
	return c, nil
}
