package view

import (
	"fmt"

	"laundryadmin/internal/domain"
)

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

type RatingBucket string

const (
	RatingAll      RatingBucket = "all"
	RatingAbove4_5 RatingBucket = "above4.5"
	Rating4To4_5   RatingBucket = "4to4.5"
	RatingBelow4   RatingBucket = "below4"
)

type StudioFilter struct {
	Search string
	Status StatusFilter
	Rating RatingBucket
	Sort   SortDir
}

func (f StudioFilter) Validate() error {
	switch f.Status {
	case "", StatusAll, StatusActive, StatusInactive:
	default:
		return fmt.Errorf("unknown status filter %q", f.Status)
	}
	switch f.Rating {
	case "", RatingAll, RatingAbove4_5, Rating4To4_5, RatingBelow4:
	default:
		return fmt.Errorf("unknown rating filter %q", f.Rating)
	}
	return nil
}

func (b RatingBucket) Contains(rating float64) bool {
	switch b {
	case RatingAbove4_5:
		return rating > 4.5
	case Rating4To4_5:
		return rating >= 4.0 && rating <= 4.5
	case RatingBelow4:
		return rating < 4.0
	}
	return true
}

// Studios applies search, status and rating predicates, then orders by id.
func Studios(items []domain.Studio, f StudioFilter) []domain.Studio {
	var byStatus Predicate[domain.Studio]
	switch f.Status {
	case StatusActive:
		byStatus = func(s domain.Studio) bool { return s.Status }
	case StatusInactive:
		byStatus = func(s domain.Studio) bool { return !s.Status }
	}

	out := Filter(items,
		func(s domain.Studio) bool {
			return MatchText(f.Search, s.StudioID, s.StudioName, s.OwnerName, s.Contact)
		},
		byStatus,
		func(s domain.Studio) bool { return f.Rating.Contains(s.Rating) },
	)
	return SortByID(out, f.Sort)
}

type StudioStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Inactive      int     `json:"inactive"`
	AverageRating float64 `json:"averageRating"`
	TotalServices int     `json:"totalServices"`
}

func StudioStatsOf(items []domain.Studio) StudioStats {
	active := Count(items, func(s domain.Studio) bool { return s.Status })
	services := 0
	for _, s := range items {
		services += s.Services
	}
	return StudioStats{
		Total:         len(items),
		Active:        active,
		Inactive:      len(items) - active,
		AverageRating: AverageBy(items, func(s domain.Studio) float64 { return s.Rating }),
		TotalServices: services,
	}
}
