package view

import "laundryadmin/internal/pkg/money"

func Count[T any](items []T, pred Predicate[T]) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// SumBy totals f over items, rounded to two decimals.
func SumBy[T any](items []T, f func(T) float64) float64 {
	var total float64
	for _, it := range items {
		total += f(it)
	}
	return money.Round2(total)
}

// AverageBy returns the mean of f over items, or 0 for an empty slice.
func AverageBy[T any](items []T, f func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, it := range items {
		total += f(it)
	}
	return money.Round2(total / float64(len(items)))
}
