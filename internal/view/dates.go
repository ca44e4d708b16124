package view

import (
	"fmt"
	"time"
)

type DateBucket string

const (
	DateAll       DateBucket = "all"
	DateToday     DateBucket = "today"
	DateYesterday DateBucket = "yesterday"
	DateThisWeek  DateBucket = "thisWeek"
	DateThisMonth DateBucket = "thisMonth"
	DateThisYear  DateBucket = "thisYear"
)

type TimeBucket string

const (
	Last15Minutes TimeBucket = "last15m"
	Last30Minutes TimeBucket = "last30m"
	Last60Minutes TimeBucket = "last60m"
	Last4Hours    TimeBucket = "last4h"
	Last24Hours   TimeBucket = "last24h"
)

var timeBucketSpans = map[TimeBucket]time.Duration{
	Last15Minutes: 15 * time.Minute,
	Last30Minutes: 30 * time.Minute,
	Last60Minutes: 60 * time.Minute,
	Last4Hours:    4 * time.Hour,
	Last24Hours:   24 * time.Hour,
}

func ParseDateBucket(s string) (DateBucket, error) {
	switch b := DateBucket(s); b {
	case "", DateAll:
		return DateAll, nil
	case DateToday, DateYesterday, DateThisWeek, DateThisMonth, DateThisYear:
		return b, nil
	}
	return "", fmt.Errorf("unknown date bucket %q", s)
}

func ParseTimeBucket(s string) (TimeBucket, error) {
	if _, ok := timeBucketSpans[TimeBucket(s)]; ok {
		return TimeBucket(s), nil
	}
	return "", fmt.Errorf("unknown time bucket %q", s)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday that starts t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// InDateBucket reports whether ts falls in the calendar bucket relative to now,
// using now's location for day boundaries.
func InDateBucket(b DateBucket, ts, now time.Time) bool {
	ts = ts.In(now.Location())
	today := StartOfDay(now)

	switch b {
	case "", DateAll:
		return true
	case DateToday:
		return !ts.Before(today) && ts.Before(today.AddDate(0, 0, 1))
	case DateYesterday:
		return !ts.Before(today.AddDate(0, 0, -1)) && ts.Before(today)
	case DateThisWeek:
		start := StartOfWeek(now)
		return !ts.Before(start) && ts.Before(start.AddDate(0, 0, 7))
	case DateThisMonth:
		return ts.Year() == now.Year() && ts.Month() == now.Month()
	case DateThisYear:
		return ts.Year() == now.Year()
	}
	return false
}

// WithinLast reports whether ts lies in the window (now-span, now].
func WithinLast(b TimeBucket, ts, now time.Time) bool {
	span, ok := timeBucketSpans[b]
	if !ok {
		return false
	}
	return ts.After(now.Add(-span)) && !ts.After(now)
}

// DateRange is inclusive of both calendar days, taken in each bound's own
// location. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

func (r DateRange) Contains(ts time.Time) bool {
	if !r.From.IsZero() {
		if ts.Before(StartOfDay(r.From)) {
			return false
		}
	}
	if !r.To.IsZero() {
		if !ts.Before(StartOfDay(r.To).AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

// ParseDay parses a YYYY-MM-DD calendar day in loc. Empty input yields a zero time.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}
