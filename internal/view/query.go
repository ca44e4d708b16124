// Package view builds derived views over entity collections: filter
// predicates, id ordering, pagination and aggregates. Functions here never
// modify their input slices.
package view

import (
	"sort"
	"strings"
)

type Identified interface {
	EntityID() int64
}

type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

func ParseSortDir(s string) SortDir {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

type Predicate[T any] func(T) bool

// Filter returns the items that satisfy every non-nil predicate, in input order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if p != nil && !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// SortByID returns a copy of items ordered by id. There is no secondary key.
func SortByID[T Identified](items []T, dir SortDir) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return out[i].EntityID() > out[j].EntityID()
		}
		return out[i].EntityID() < out[j].EntityID()
	})
	return out
}

// MatchText reports whether term occurs in any field, case-insensitively.
// An empty term matches everything.
func MatchText(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Page struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

func (p Page) Normalize() Page {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

// Paginate slices one page out of items and returns it with the total count.
func Paginate[T any](items []T, p Page) ([]T, int) {
	p = p.Normalize()
	total := len(items)
	if p.Page-1 >= (total+p.Limit-1)/p.Limit {
		return []T{}, total
	}
	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	if end > total {
		end = total
	}
	return append([]T(nil), items[start:end]...), total
}
