package onboarding

import (
	"laundryadmin/internal/domain"
	"laundryadmin/internal/view"
)

// FilterState is the onboarding screen's filter selection. The time window,
// date bucket and explicit range are mutually exclusive: selecting one clears
// the other two.
type FilterState struct {
	Search string
	Status domain.RequestStatus
	time   view.TimeBucket
	date   view.DateBucket
	rng    view.DateRange
}

func (s *FilterState) SelectTime(b view.TimeBucket) {
	s.time, s.date, s.rng = b, "", view.DateRange{}
}

func (s *FilterState) SelectDate(b view.DateBucket) {
	s.time, s.date, s.rng = "", b, view.DateRange{}
}

func (s *FilterState) SelectRange(r view.DateRange) {
	s.time, s.date, s.rng = "", "", r
}

func (s *FilterState) ClearPeriod() {
	s.time, s.date, s.rng = "", "", view.DateRange{}
}

func (s FilterState) Filter(sort view.SortDir) view.RequestFilter {
	return view.RequestFilter{
		Search: s.Search,
		Status: s.Status,
		Time:   s.time,
		Date:   s.date,
		Range:  s.rng,
		Sort:   sort,
	}
}
