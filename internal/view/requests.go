package view

import (
	"time"

	"laundryadmin/internal/domain"
)

// RequestFilter conjoins every set field. Keeping the time, date and range
// selections mutually exclusive is the caller's job.
type RequestFilter struct {
	Search string
	Status domain.RequestStatus
	Time   TimeBucket
	Date   DateBucket
	Range  DateRange
	Sort   SortDir
}

func Requests(items []domain.OnboardRequest, f RequestFilter, now time.Time) []domain.OnboardRequest {
	var byStatus, byTime, byDate, byRange Predicate[domain.OnboardRequest]
	if f.Status != "" {
		byStatus = func(r domain.OnboardRequest) bool { return r.Status == f.Status }
	}
	if f.Time != "" {
		byTime = func(r domain.OnboardRequest) bool { return WithinLast(f.Time, r.RequestDate, now) }
	}
	if f.Date != "" && f.Date != DateAll {
		byDate = func(r domain.OnboardRequest) bool { return InDateBucket(f.Date, r.RequestDate, now) }
	}
	if !f.Range.IsZero() {
		byRange = func(r domain.OnboardRequest) bool { return f.Range.Contains(r.RequestDate) }
	}

	out := Filter(items,
		func(r domain.OnboardRequest) bool {
			return MatchText(f.Search, r.StudioName, r.OwnerName, r.MobileNumber, r.EmailID)
		},
		byStatus, byTime, byDate, byRange,
	)
	return SortByID(out, f.Sort)
}

type RequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func RequestStatsOf(items []domain.OnboardRequest) RequestStats {
	is := func(s domain.RequestStatus) Predicate[domain.OnboardRequest] {
		return func(r domain.OnboardRequest) bool { return r.Status == s }
	}
	return RequestStats{
		Total:    len(items),
		Pending:  Count(items, is(domain.RequestPending)),
		Approved: Count(items, is(domain.RequestApproved)),
		Rejected: Count(items, is(domain.RequestRejected)),
	}
}
