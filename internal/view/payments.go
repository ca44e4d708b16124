package view

import (
	"fmt"
	"time"

	"laundryadmin/internal/domain"
)

// DateCustom selects an explicit DateRange instead of a relative bucket.
const DateCustom DateBucket = "custom"

func ParsePaymentBucket(s string) (DateBucket, error) {
	switch b := DateBucket(s); b {
	case "", DateAll:
		return DateAll, nil
	case DateToday, DateThisWeek, DateThisMonth, DateCustom:
		return b, nil
	}
	return "", fmt.Errorf("unknown payment date filter %q", s)
}

type PaymentFilter struct {
	Bucket DateBucket
	Range  DateRange
	Search string
	Status domain.PaymentStatus
	Sort   SortDir
}

func Payments(items []domain.Payment, f PaymentFilter, now time.Time) []domain.Payment {
	var byDate Predicate[domain.Payment]
	switch {
	case f.Bucket == DateCustom:
		byDate = func(p domain.Payment) bool { return f.Range.Contains(p.Date) }
	case f.Bucket != "" && f.Bucket != DateAll:
		byDate = func(p domain.Payment) bool { return InDateBucket(f.Bucket, p.Date, now) }
	}

	var byStatus Predicate[domain.Payment]
	if f.Status != "" {
		byStatus = func(p domain.Payment) bool { return p.Status == f.Status }
	}

	out := Filter(items,
		byDate,
		func(p domain.Payment) bool { return MatchText(f.Search, p.TransactionID) },
		byStatus,
	)
	return SortByID(out, f.Sort)
}

type PaymentSummary struct {
	Count           int     `json:"count"`
	PendingTotal    float64 `json:"pendingTotal"`
	PendingStandard float64 `json:"pendingStandard"`
	PendingExpress  float64 `json:"pendingExpress"`
	CompletedTotal  float64 `json:"completedTotal"`
	FailedTotal     float64 `json:"failedTotal"`
}

func PaymentSummaryOf(items []domain.Payment) PaymentSummary {
	amountIf := func(match func(domain.Payment) bool) float64 {
		return SumBy(items, func(p domain.Payment) float64 {
			if match(p) {
				return p.Amount
			}
			return 0
		})
	}
	pending := func(t domain.ServiceType) func(domain.Payment) bool {
		return func(p domain.Payment) bool {
			return p.Status == domain.PaymentPending && (t == "" || p.ServiceType == t)
		}
	}
	return PaymentSummary{
		Count:           len(items),
		PendingTotal:    amountIf(pending("")),
		PendingStandard: amountIf(pending(domain.ServiceStandard)),
		PendingExpress:  amountIf(pending(domain.ServiceExpress)),
		CompletedTotal:  amountIf(func(p domain.Payment) bool { return p.Status == domain.PaymentCompleted }),
		FailedTotal:     amountIf(func(p domain.Payment) bool { return p.Status == domain.PaymentFailed }),
	}
}
