package repository

import (
	"fmt"
	"time"

	"laundryadmin/internal/domain"
)

const (
	KeyStudios         = "studios"
	KeyUsers           = "users"
	KeyPayments        = "payments"
	KeyOnboardRequests = "onboardRequests"
	KeyStudioServices  = "studioServices"
)

func DefaultStudios() []domain.Studio {
	rows := []struct {
		name, owner, contact string
		services             int
		rating               float64
		active               bool
	}{
		{"Sparkle Laundry", "Rajesh Kumar", "+91 98765 43210", 3, 4.5, true},
		{"Fresh & Clean", "Priya Sharma", "+91 98765 43211", 3, 4.7, true},
		{"Quick Wash Studio", "Amit Patel", "+91 98765 43212", 2, 4.2, true},
		{"Crystal Cleaners", "Sneha Reddy", "+91 98765 43213", 3, 4.4, true},
		{"Urban Laundromat", "Vikram Singh", "+91 98765 43214", 3, 4.6, true},
		{"Pristine Press", "Anita Desai", "+91 98765 43215", 1, 3.9, false},
		{"Bubble Wash", "Karan Mehta", "+91 98765 43216", 2, 4.1, false},
		{"Royal Dry Cleaners", "Neha Gupta", "+91 98765 43217", 1, 3.5, false},
	}

	out := make([]domain.Studio, 0, len(rows))
	for i, r := range rows {
		id := int64(i + 1)
		out = append(out, domain.Studio{
			ID:         id,
			StudioID:   domain.StudioCode(id),
			StudioName: r.name,
			OwnerName:  r.owner,
			Contact:    r.contact,
			Services:   r.services,
			Rating:     r.rating,
			Status:     r.active,
		})
	}
	return out
}

func DefaultCustomers() []domain.Customer {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 10, 30, 0, 0, time.UTC) }
	return []domain.Customer{
		{ID: 1, Name: "Aarav Shah", Mobile: "+91 90000 11111", Email: "aarav.shah@example.com", Location: "Mumbai", Device: "Android", OrdersCount: 12, TotalOrderValue: 5640, LastOrderDate: day(2026, 10, 12)},
		{ID: 2, Name: "Diya Kapoor", Mobile: "+91 90000 22222", Email: "diya.kapoor@example.com", Location: "Bengaluru", Device: "iOS", OrdersCount: 8, TotalOrderValue: 4120.5, LastOrderDate: day(2026, 10, 9)},
		{ID: 3, Name: "Kabir Malhotra", Mobile: "+91 90000 33333", Email: "kabir.m@example.com", Location: "Delhi", Device: "Android", OrdersCount: 3, TotalOrderValue: 980, LastOrderDate: day(2026, 9, 28)},
		{ID: 4, Name: "Ishita Verma", Mobile: "+91 90000 44444", Email: "ishita.verma@example.com", Location: "Pune", Device: "iOS", OrdersCount: 15, TotalOrderValue: 7325.75, LastOrderDate: day(2026, 10, 14)},
		{ID: 5, Name: "Rohan Joshi", Mobile: "+91 90000 55555", Email: "rohan.joshi@example.com", Location: "Hyderabad", Device: "Web", OrdersCount: 1, TotalOrderValue: 320, LastOrderDate: day(2026, 8, 3)},
		{ID: 6, Name: "Ananya Iyer", Mobile: "+91 90000 66666", Email: "ananya.iyer@example.com", Location: "Chennai", Device: "Android", OrdersCount: 6, TotalOrderValue: 2710, LastOrderDate: day(2026, 10, 1)},
	}
}

// DefaultOnboardRequests dates the requests relative to now so the time filters have data.
func DefaultOnboardRequests(now time.Time) []domain.OnboardRequest {
	return []domain.OnboardRequest{
		{ID: 1, StudioName: "Clean Wave Laundry", OwnerName: "Suresh Nair", MobileNumber: "9876500001", EmailID: "suresh@cleanwave.in", RequestDate: now.Add(-10 * time.Minute), Status: domain.RequestPending},
		{ID: 2, StudioName: "Wash Hub Express", OwnerName: "Meena Pillai", MobileNumber: "9876500002", EmailID: "meena@washhub.in", RequestDate: now.Add(-3 * time.Hour), Status: domain.RequestPending},
		{ID: 3, StudioName: "Dry Right Cleaners", OwnerName: "Farhan Ali", MobileNumber: "9876500003", EmailID: "farhan@dryright.in", RequestDate: now.AddDate(0, 0, -1), Status: domain.RequestApproved},
		{ID: 4, StudioName: "Steam Iron Studio", OwnerName: "Lakshmi Rao", MobileNumber: "9876500004", EmailID: "lakshmi@steamiron.in", RequestDate: now.AddDate(0, 0, -5), Status: domain.RequestRejected},
	}
}

// MockPayments synthesizes the payment history of one studio. The result only
// depends on studioID and now.
func MockPayments(studioID int64, now time.Time) []domain.Payment {
	rows := []struct {
		amount   float64
		status   domain.PaymentStatus
		kind     domain.ServiceType
		customer string
		age      time.Duration
	}{
		{1450, domain.PaymentPending, domain.ServiceStandard, "Aarav Shah", 2 * time.Hour},
		{875, domain.PaymentPending, domain.ServiceExpress, "Diya Kapoor", 26 * time.Hour},
		{2200, domain.PaymentCompleted, domain.ServiceStandard, "Ishita Verma", 4 * 24 * time.Hour},
		{1200, domain.PaymentCompleted, domain.ServiceExpress, "Kabir Malhotra", 9 * 24 * time.Hour},
		{650, domain.PaymentFailed, domain.ServiceStandard, "", 15 * 24 * time.Hour},
		{480, domain.PaymentCompleted, domain.ServiceStandard, "Ananya Iyer", 40 * 24 * time.Hour},
	}

	out := make([]domain.Payment, 0, len(rows))
	for i, r := range rows {
		n := int64(i + 1)
		date := now.Add(-r.age).UTC()
		p := domain.Payment{
			ID:            studioID*100 + n,
			StudioID:      studioID,
			TransactionID: fmt.Sprintf("TXN%d%03d", studioID, n),
			Amount:        r.amount,
			Date:          date,
			Status:        r.status,
			ServiceType:   r.kind,
			CustomerName:  r.customer,
		}
		if r.status == domain.PaymentCompleted {
			delivered := date.Add(24 * time.Hour)
			p.DeliveredDate = &delivered
		}
		out = append(out, p)
	}
	return out
}

func DefaultClothingItems() []domain.ClothingItem {
	return []domain.ClothingItem{
		{ID: "shirt", Name: "Shirt", Category: "Men", StandardPrice: 40, ExpressPrice: 60, Active: true},
		{ID: "trousers", Name: "Trousers", Category: "Men", StandardPrice: 50, ExpressPrice: 75, Active: true},
		{ID: "saree", Name: "Saree", Category: "Women", StandardPrice: 120, ExpressPrice: 180, Active: true},
		{ID: "kurta", Name: "Kurta", Category: "Women", StandardPrice: 60, ExpressPrice: 90, Active: true},
		{ID: "bedsheet", Name: "Bedsheet", Category: "Household", StandardPrice: 80, ExpressPrice: 120, Active: true},
		{ID: "blanket", Name: "Blanket", Category: "Household", StandardPrice: 200, ExpressPrice: 300, Active: false},
	}
}

func DefaultServices() []domain.Service {
	return []domain.Service{
		{ID: "wash-fold", Name: "Wash & Fold", Active: true, SubServices: []domain.SubService{
			{ID: "regular", Name: "Regular Wash", Active: true, PricePerUnitStandard: 60, PricePerUnitExpress: 90, PricePerItemStandard: 25, PricePerItemExpress: 40},
			{ID: "delicate", Name: "Delicate Wash", Active: true, PricePerUnitStandard: 90, PricePerUnitExpress: 130, PricePerItemStandard: 35, PricePerItemExpress: 55},
		}},
		{ID: "dry-clean", Name: "Dry Cleaning", Active: true, SubServices: []domain.SubService{
			{ID: "premium", Name: "Premium Dry Clean", Active: true, PricePerItemStandard: 150, PricePerItemExpress: 220},
		}},
		{ID: "ironing", Name: "Ironing", Active: true, SubServices: []domain.SubService{
			{ID: "steam", Name: "Steam Iron", Active: true, PricePerItemStandard: 15, PricePerItemExpress: 25},
		}},
	}
}
