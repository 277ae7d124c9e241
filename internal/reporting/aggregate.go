package reporting

import (
	"sort"

	"sales-backend/internal/models"
)

// UnknownSeller is the grouping bucket for records missing a seller email.
const UnknownSeller = "Unknown"

// LeaderboardSize caps the number of ranked sellers returned.
const LeaderboardSize = 5

// Metric selects what a seller leaderboard accumulates.
type Metric string

const (
	// MetricAmount sums the seller-recorded amount over every record.
	MetricAmount Metric = "amount"
	// MetricPax sums the pax count over Completed records only.
	MetricPax Metric = "pax"
)

// ParseMetric maps a query-string value onto a Metric, defaulting to amount.
func ParseMetric(s string) Metric {
	if Metric(s) == MetricPax {
		return MetricPax
	}
	return MetricAmount
}

// StatusTotals is the financial summary over a filtered record set.
// Earned sums Completed records, Pending sums Pending records; Cancelled
// amounts count toward neither.
type StatusTotals struct {
	Earned  float64 `json:"earned"`
	Pending float64 `json:"pending"`
}

// SumByStatus partitions the effective amount of each record by status.
// Unparseable amounts contribute 0 (lossy-coercion policy).
func SumByStatus(sales []*models.Sale) StatusTotals {
	var totals StatusTotals
	for _, sale := range sales {
		switch sale.Status {
		case models.StatusCompleted:
			totals.Earned += sale.EffectiveAmount()
		case models.StatusPending:
			totals.Pending += sale.EffectiveAmount()
		}
	}
	return totals
}

// SellerGroup is one leaderboard entry: a seller, their accumulated metric
// and the records behind it (kept for drill-down paging).
type SellerGroup struct {
	Email string         `json:"email"`
	Total float64        `json:"total"`
	Sales []*models.Sale `json:"sales"`
}

// TopSellers groups records by seller email, accumulates the chosen metric
// and returns at most LeaderboardSize groups, ranked descending. The sort is
// stable, so ties keep first-encountered order.
func TopSellers(sales []*models.Sale, metric Metric) []SellerGroup {
	index := make(map[string]int)
	groups := make([]SellerGroup, 0)

	for _, sale := range sales {
		email := sale.SellerEmail
		if email == "" {
			email = UnknownSeller
		}
		i, ok := index[email]
		if !ok {
			i = len(groups)
			index[email] = i
			groups = append(groups, SellerGroup{Email: email})
		}
		groups[i].Sales = append(groups[i].Sales, sale)

		switch metric {
		case MetricPax:
			if sale.Status == models.StatusCompleted {
				groups[i].Total += float64(sale.Quantity)
			}
		default:
			groups[i].Total += models.ParseAmount(sale.Amount)
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total > groups[b].Total
	})

	if len(groups) > LeaderboardSize {
		groups = groups[:LeaderboardSize]
	}
	return groups
}
