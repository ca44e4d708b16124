package onboarding

import (
	"context"
	"errors"
	"fmt"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/navigation"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/view"
)

type RequestRepository interface {
	Get(id int64) (domain.OnboardRequest, error)
	FilteredView(f view.RequestFilter) []domain.OnboardRequest
	Stats() view.RequestStats
	HandleStatusChange(ctx context.Context, id int64, status domain.RequestStatus) error
}

type Service struct {
	requests RequestRepository
}

func NewService(requests RequestRepository) *Service {
	return &Service{requests: requests}
}

type ListResult struct {
	Items []domain.OnboardRequest `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
	Stats view.RequestStats       `json:"stats"`
}

func (s *Service) List(state FilterState, sort view.SortDir, p view.Page) *ListResult {
	p = p.Normalize()
	items, total := view.Paginate(s.requests.FilteredView(state.Filter(sort)), p)
	return &ListResult{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Stats: s.requests.Stats(),
	}
}

func (s *Service) ChangeStatus(ctx context.Context, id int64, status domain.RequestStatus) (domain.OnboardRequest, error) {
	if err := s.requests.HandleStatusChange(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			navigation.Error(ctx, "Request not found")
		}
		return domain.OnboardRequest{}, err
	}
	req, err := s.requests.Get(id)
	if err != nil {
		return domain.OnboardRequest{}, err
	}
	navigation.Success(ctx, fmt.Sprintf("%s marked %s", req.StudioName, req.Status))
	return req, nil
}
