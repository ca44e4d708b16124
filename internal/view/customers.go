package view

import (
	"strings"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/money"
)

type CustomerFilter struct {
	Search string
	Device string
	Sort   SortDir
}

func Customers(items []domain.Customer, f CustomerFilter) []domain.Customer {
	var byDevice Predicate[domain.Customer]
	if d := strings.TrimSpace(f.Device); d != "" && !strings.EqualFold(d, "all") {
		byDevice = func(c domain.Customer) bool { return strings.EqualFold(c.Device, d) }
	}

	out := Filter(items,
		func(c domain.Customer) bool {
			return MatchText(f.Search, c.Name, c.Mobile, c.Email, c.Location)
		},
		byDevice,
	)
	return SortByID(out, f.Sort)
}

type CustomerStats struct {
	Total             int     `json:"total"`
	TotalOrders       int     `json:"totalOrders"`
	TotalOrderValue   float64 `json:"totalOrderValue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

func CustomerStatsOf(items []domain.Customer) CustomerStats {
	st := CustomerStats{Total: len(items)}
	for _, c := range items {
		st.TotalOrders += c.OrdersCount
	}
	st.TotalOrderValue = SumBy(items, func(c domain.Customer) float64 { return c.TotalOrderValue })
	if st.TotalOrders > 0 {
		st.AverageOrderValue = money.Round2(st.TotalOrderValue / float64(st.TotalOrders))
	}
	return st
}
