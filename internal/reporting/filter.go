// Package reporting holds the pure transforms that turn a raw list of sale
// records into filtered views, leaderboards, financial summaries and export
// documents. Every function here is synchronous, allocation-per-call and free
// of I/O: callers hand in an already-materialized snapshot and get a fresh
// result back.
package reporting

import (
	"strings"
	"time"

	"sales-backend/internal/models"
	"sales-backend/internal/timeutil"
)

// Window selects the date bucket a record's calendar date must fall in.
type Window string

const (
	WindowDay   Window = "day"   // same calendar date as now
	WindowWeek  Window = "week"  // from the most recent Sunday 00:00 through now
	WindowMonth Window = "month" // same calendar month and year as now
	WindowAll   Window = "all"   // no date restriction
)

// ParseWindow maps a query-string value onto a Window, defaulting to all.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowDay, WindowWeek, WindowMonth:
		return Window(s)
	default:
		return WindowAll
	}
}

// StatusAll skips status filtering.
const StatusAll = "all"

// Filter returns the subset of sales matching the window, status and search
// term, evaluated against now. It is order-preserving and never mutates the
// input. The three predicates are independent; composition order is
// date, status, text.
//
// Records without a parseable date are excluded whenever a window narrower
// than all is requested. The search term matches case-insensitively against
// sellerEmail, referredBy or folio; a blank term is a no-op.
func Filter(sales []*models.Sale, window Window, status, searchTerm string, now time.Time) []*models.Sale {
	out := make([]*models.Sale, 0, len(sales))
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	for _, sale := range sales {
		if !inWindow(sale, window, now) {
			continue
		}
		if status != "" && status != StatusAll && sale.Status != status {
			continue
		}
		if term != "" && !matchesTerm(sale, term) {
			continue
		}
		out = append(out, sale)
	}
	return out
}

func inWindow(sale *models.Sale, window Window, now time.Time) bool {
	if window == WindowAll {
		return true
	}
	saleDate, err := timeutil.ParseDate(sale.Date)
	if err != nil {
		return false
	}
	switch window {
	case WindowDay:
		return timeutil.SameDay(saleDate, now)
	case WindowWeek:
		return !saleDate.Before(timeutil.StartOfWeek(now)) && !saleDate.After(now)
	case WindowMonth:
		return timeutil.SameMonth(saleDate, now)
	}
	return true
}

func matchesTerm(sale *models.Sale, term string) bool {
	return strings.Contains(strings.ToLower(sale.SellerEmail), term) ||
		strings.Contains(strings.ToLower(sale.ReferredBy), term) ||
		strings.Contains(strings.ToLower(sale.Folio), term)
}
