package view

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryadmin/internal/domain"
)

func sampleStudios() []domain.Studio {
	return []domain.Studio{
		{ID: 3, StudioID: "STU10003", StudioName: "Fresh Fold", OwnerName: "Meera Iyer", Rating: 4.2, Status: true, Services: 3},
		{ID: 1, StudioID: "STU10001", StudioName: "Spin Cycle", OwnerName: "Arjun Rao", Rating: 4.5, Status: true, Services: 2},
		{ID: 2, StudioID: "STU10002", StudioName: "Bubble Bay", OwnerName: "Kavya Nair", Rating: 4.7, Status: false, Services: 4},
		{ID: 4, StudioID: "STU10004", StudioName: "Press Point", OwnerName: "Rohan Das", Rating: 3.8, Status: false, Services: 1},
	}
}

func ids[T Identified](items []T) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.EntityID())
	}
	return out
}

func TestStudios_StatusAndSort(t *testing.T) {
	got := Studios(sampleStudios(), StudioFilter{Status: StatusActive})
	assert.Equal(t, []int64{1, 3}, ids(got))

	got = Studios(sampleStudios(), StudioFilter{Sort: Desc})
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(got))
}

func TestStudios_SearchIsCaseInsensitive(t *testing.T) {
	got := Studios(sampleStudios(), StudioFilter{Search: "  bUBBLE "})
	assert.Equal(t, []int64{2}, ids(got))

	got = Studios(sampleStudios(), StudioFilter{Search: "stu1000"})
	assert.Len(t, got, 4)
}

func TestStudios_RatingBuckets(t *testing.T) {
	assert.Equal(t, []int64{2}, ids(Studios(sampleStudios(), StudioFilter{Rating: RatingAbove4_5})))
	assert.Equal(t, []int64{1, 3}, ids(Studios(sampleStudios(), StudioFilter{Rating: Rating4To4_5})))
	assert.Equal(t, []int64{4}, ids(Studios(sampleStudios(), StudioFilter{Rating: RatingBelow4})))
}

func TestStudios_SubsetAndIdempotent(t *testing.T) {
	all := sampleStudios()
	f := StudioFilter{Search: "a", Status: StatusActive, Rating: Rating4To4_5, Sort: Desc}

	once := Studios(all, f)
	twice := Studios(once, f)

	assert.Equal(t, once, twice)
	for _, s := range once {
		assert.Contains(t, all, s)
	}
	assert.Equal(t, sampleStudios(), all, "input must not be reordered")
}

func TestStudioFilter_Validate(t *testing.T) {
	assert.NoError(t, StudioFilter{}.Validate())
	assert.Error(t, StudioFilter{Status: "archived"}.Validate())
	assert.Error(t, StudioFilter{Rating: "5stars"}.Validate())
}

func TestStudioStats(t *testing.T) {
	st := StudioStatsOf(sampleStudios())
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, st.Total, st.Active+st.Inactive)
	assert.Equal(t, 2, st.Active)
	assert.Equal(t, 10, st.TotalServices)
	assert.InDelta(t, 4.3, st.AverageRating, 0.001)

	empty := StudioStatsOf(nil)
	assert.Equal(t, StudioStats{}, empty)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := Paginate(items, Page{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 5, total)

	page, _ = Paginate(items, Page{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, page)

	page, _ = Paginate(items, Page{Page: 9, Limit: 2})
	assert.Empty(t, page)

	page, total = Paginate(items, Page{Page: math.MaxInt64, Limit: MaxLimit})
	assert.Empty(t, page)
	assert.Equal(t, 5, total)

	page, _ = Paginate([]int{}, Page{Page: 1, Limit: 2})
	assert.Empty(t, page)

	assert.Equal(t, Page{Page: 1, Limit: DefaultLimit}, Page{Page: -1, Limit: 500}.Normalize())
}

func TestCustomers_FilterAndStats(t *testing.T) {
	items := []domain.Customer{
		{ID: 2, Name: "Priya", Device: "iOS", Location: "Pune", OrdersCount: 4, TotalOrderValue: 1000},
		{ID: 1, Name: "Rahul", Device: "Android", Location: "Mumbai", OrdersCount: 1, TotalOrderValue: 250.5},
	}

	assert.Equal(t, []int64{2}, ids(Customers(items, CustomerFilter{Device: "ios"})))
	assert.Equal(t, []int64{1}, ids(Customers(items, CustomerFilter{Search: "mum"})))
	assert.Equal(t, []int64{1, 2}, ids(Customers(items, CustomerFilter{Device: "all"})))

	st := CustomerStatsOf(items)
	assert.Equal(t, 5, st.TotalOrders)
	assert.Equal(t, 1250.5, st.TotalOrderValue)
	assert.Equal(t, 250.1, st.AverageOrderValue)
	assert.Equal(t, 0.0, CustomerStatsOf(nil).AverageOrderValue)
}

func TestDateBuckets(t *testing.T) {
	// Friday 16 Oct 2026, 15:00 UTC
	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		bucket DateBucket
		ts     time.Time
		want   bool
	}{
		{DateToday, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), true},
		{DateToday, time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC), false},
		{DateYesterday, time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC), true},
		{DateThisWeek, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), true},
		{DateThisWeek, time.Date(2026, 10, 10, 23, 0, 0, 0, time.UTC), false},
		{DateThisMonth, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), true},
		{DateThisMonth, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), false},
		{DateThisYear, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{DateThisYear, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{DateAll, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InDateBucket(tc.bucket, tc.ts, now), "%s %s", tc.bucket, tc.ts)
	}
}

func TestWithinLast(t *testing.T) {
	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

	assert.True(t, WithinLast(Last15Minutes, now.Add(-10*time.Minute), now))
	assert.False(t, WithinLast(Last15Minutes, now.Add(-20*time.Minute), now))
	assert.True(t, WithinLast(Last4Hours, now.Add(-3*time.Hour), now))
	assert.False(t, WithinLast(Last24Hours, now.Add(time.Minute), now), "future timestamps are excluded")
	assert.False(t, WithinLast("last7d", now, now))
}

func TestDateRange_InclusiveDays(t *testing.T) {
	from, err := ParseDay("2026-10-10", time.UTC)
	require.NoError(t, err)
	to, err := ParseDay("2026-10-12", time.UTC)
	require.NoError(t, err)
	r := DateRange{From: from, To: to}

	assert.True(t, r.Contains(time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2026, 10, 12, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 10, 9, 23, 0, 0, 0, time.UTC)))
	assert.True(t, DateRange{}.Contains(time.Now()))
}

func TestParseBuckets(t *testing.T) {
	b, err := ParseDateBucket("")
	require.NoError(t, err)
	assert.Equal(t, DateAll, b)

	_, err = ParseDateBucket("lastDecade")
	assert.Error(t, err)

	_, err = ParseTimeBucket("last4h")
	assert.NoError(t, err)

	_, err = ParsePaymentBucket("yesterday")
	assert.Error(t, err, "payments only offer today, this week, this month and custom")
}

func TestPayments_FiltersAndSummary(t *testing.T) {
	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	items := []domain.Payment{
		{ID: 1, TransactionID: "TXN1001", Amount: 1450, Status: domain.PaymentPending, ServiceType: domain.ServiceStandard, Date: now.Add(-time.Hour)},
		{ID: 2, TransactionID: "TXN1002", Amount: 875, Status: domain.PaymentPending, ServiceType: domain.ServiceExpress, Date: now.AddDate(0, 0, -3)},
		{ID: 3, TransactionID: "TXN1003", Amount: 2200, Status: domain.PaymentCompleted, ServiceType: domain.ServiceStandard, Date: now.AddDate(0, -2, 0)},
		{ID: 4, TransactionID: "TXN1004", Amount: 650.25, Status: domain.PaymentFailed, ServiceType: domain.ServiceStandard, Date: now},
	}

	assert.Equal(t, []int64{1, 4}, ids(Payments(items, PaymentFilter{Bucket: DateToday}, now)))
	assert.Equal(t, []int64{2}, ids(Payments(items, PaymentFilter{Search: "txn1002"}, now)))
	assert.Equal(t, []int64{4, 2, 1}, ids(Payments(items, PaymentFilter{Bucket: DateThisMonth, Sort: Desc}, now)))
	assert.Equal(t, []int64{3}, ids(Payments(items, PaymentFilter{Status: domain.PaymentCompleted}, now)))

	custom := PaymentFilter{Bucket: DateCustom, Range: DateRange{From: now.AddDate(0, 0, -4), To: now.AddDate(0, 0, -2)}}
	assert.Equal(t, []int64{2}, ids(Payments(items, custom, now)))

	sum := PaymentSummaryOf(items)
	assert.Equal(t, 2325.0, sum.PendingTotal)
	assert.Equal(t, 1450.0, sum.PendingStandard)
	assert.Equal(t, 875.0, sum.PendingExpress)
	assert.Equal(t, 2200.0, sum.CompletedTotal)
	assert.Equal(t, 650.25, sum.FailedTotal)
	assert.Equal(t, 4, sum.Count)
}

func TestRequests_Filters(t *testing.T) {
	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	items := []domain.OnboardRequest{
		{ID: 1, StudioName: "Clean Wave", Status: domain.RequestPending, RequestDate: now.Add(-10 * time.Minute)},
		{ID: 2, StudioName: "Wash Hub", Status: domain.RequestPending, RequestDate: now.Add(-2 * time.Hour)},
		{ID: 3, StudioName: "Dry Right", Status: domain.RequestApproved, RequestDate: now.AddDate(0, 0, -1)},
		{ID: 4, StudioName: "Iron Man Laundry", Status: domain.RequestRejected, RequestDate: now.AddDate(0, -1, 0)},
	}

	assert.Equal(t, []int64{1}, ids(Requests(items, RequestFilter{Time: Last15Minutes}, now)))
	assert.Equal(t, []int64{1, 2}, ids(Requests(items, RequestFilter{Time: Last4Hours}, now)))
	assert.Equal(t, []int64{3}, ids(Requests(items, RequestFilter{Date: DateYesterday}, now)))
	assert.Equal(t, []int64{1, 2, 3}, ids(Requests(items, RequestFilter{Date: DateThisMonth}, now)))
	assert.Equal(t, []int64{4}, ids(Requests(items, RequestFilter{Search: "iron"}, now)))
	assert.Equal(t, []int64{2, 1}, ids(Requests(items, RequestFilter{Status: domain.RequestPending, Sort: Desc}, now)))

	st := RequestStatsOf(items)
	assert.Equal(t, RequestStats{Total: 4, Pending: 2, Approved: 1, Rejected: 1}, st)
}
