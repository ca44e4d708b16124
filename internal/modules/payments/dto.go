package payments

import (
	"fmt"
	"strings"
	"time"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/view"
)

type ListQuery struct {
	Bucket string `form:"bucket"`
	From   string `form:"from"`
	To     string `form:"to"`
	Q      string `form:"q"`
	Status string `form:"status"`
	Sort   string `form:"sort"`
	view.Page
}

// Filter turns the query into a payment filter. from/to without a bucket
// select the custom range.
func (q ListQuery) Filter() (view.PaymentFilter, error) {
	bucket, err := view.ParsePaymentBucket(q.Bucket)
	if err != nil {
		return view.PaymentFilter{}, repository.NewValidationError("bucket", err.Error())
	}

	var rng view.DateRange
	if rng.From, err = view.ParseDay(q.From, time.UTC); err != nil {
		return view.PaymentFilter{}, repository.NewValidationError("from", "expected YYYY-MM-DD")
	}
	if rng.To, err = view.ParseDay(q.To, time.UTC); err != nil {
		return view.PaymentFilter{}, repository.NewValidationError("to", "expected YYYY-MM-DD")
	}
	if !rng.IsZero() && q.Bucket == "" {
		bucket = view.DateCustom
	}
	if bucket == view.DateCustom && rng.IsZero() {
		return view.PaymentFilter{}, repository.NewValidationError("from", "custom range needs from or to")
	}

	status := domain.PaymentStatus(strings.TrimSpace(q.Status))
	if status != "" && !status.Valid() {
		return view.PaymentFilter{}, repository.NewValidationError("status", fmt.Sprintf("unknown status %q", q.Status))
	}

	return view.PaymentFilter{
		Bucket: bucket,
		Range:  rng,
		Search: q.Q,
		Status: status,
		Sort:   view.ParseSortDir(q.Sort),
	}, nil
}

type RecordBulkRequest struct {
	PaymentIDs []int64 `json:"paymentIds"`
	Reference  string  `json:"reference"`
}
