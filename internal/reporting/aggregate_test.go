package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-backend/internal/models"
)

func TestSumByStatus(t *testing.T) {
	sales := []*models.Sale{
		{Date: "2024-06-01", Amount: "100", Status: models.StatusCompleted},
		{Date: "2024-06-02", Amount: "50", Status: models.StatusPending},
	}

	totals := SumByStatus(sales)

	assert.Equal(t, 100.0, totals.Earned)
	assert.Equal(t, 50.0, totals.Pending)
}

func TestSumByStatusExcludesCancelled(t *testing.T) {
	sales := []*models.Sale{
		{Amount: "100", Status: models.StatusCompleted},
		{Amount: "999", Status: models.StatusCancelled},
		{Amount: "1", Status: "SomethingElse"},
	}

	totals := SumByStatus(sales)

	assert.Equal(t, 100.0, totals.Earned)
	assert.Equal(t, 0.0, totals.Pending)
}

func TestSumByStatusPrefersTotalAmount(t *testing.T) {
	sales := []*models.Sale{
		{Amount: "100", TotalAmount: "120", Status: models.StatusCompleted},
		{Amount: "not-a-number", Status: models.StatusPending}, // coerces to 0
	}

	totals := SumByStatus(sales)

	assert.Equal(t, 120.0, totals.Earned)
	assert.Equal(t, 0.0, totals.Pending)
}

func TestTopSellersByAmount(t *testing.T) {
	sales := []*models.Sale{
		{SellerEmail: "a@x.com", Amount: "10", Status: models.StatusCompleted},
		{SellerEmail: "a@x.com", Amount: "20", Status: models.StatusCompleted},
		{SellerEmail: "a@x.com", Amount: "5", Status: models.StatusCompleted},
		{SellerEmail: "b@x.com", Amount: "100", Status: models.StatusCompleted},
	}

	groups := TopSellers(sales, MetricAmount)

	require.Len(t, groups, 2)
	assert.Equal(t, "b@x.com", groups[0].Email)
	assert.Equal(t, 100.0, groups[0].Total)
	assert.Equal(t, "a@x.com", groups[1].Email)
	assert.Equal(t, 35.0, groups[1].Total)
	assert.Len(t, groups[1].Sales, 3)
}

func TestTopSellersPaxMetricCountsCompletedOnly(t *testing.T) {
	sales := []*models.Sale{
		{SellerEmail: "a@x.com", Quantity: 4, Status: models.StatusCompleted},
		{SellerEmail: "a@x.com", Quantity: 9, Status: models.StatusPending},
		{SellerEmail: "b@x.com", Quantity: 3, Status: models.StatusCompleted},
	}

	groups := TopSellers(sales, MetricPax)

	require.Len(t, groups, 2)
	assert.Equal(t, "a@x.com", groups[0].Email)
	assert.Equal(t, 4.0, groups[0].Total)
	// The Pending record still rides along in the group for drill-down.
	assert.Len(t, groups[0].Sales, 2)
}

func TestTopSellersTruncatesToFive(t *testing.T) {
	var sales []*models.Sale
	for i := 0; i < 8; i++ {
		sales = append(sales, &models.Sale{
			SellerEmail: fmt.Sprintf("s%d@x.com", i),
			Amount:      fmt.Sprintf("%d", (i+1)*10),
		})
	}

	groups := TopSellers(sales, MetricAmount)

	require.Len(t, groups, LeaderboardSize)
	assert.Equal(t, "s7@x.com", groups[0].Email)
	// Ranking must be non-increasing in the metric.
	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i-1].Total, groups[i].Total)
	}
}

func TestTopSellersTiesKeepFirstEncounteredOrder(t *testing.T) {
	sales := []*models.Sale{
		{SellerEmail: "first@x.com", Amount: "50"},
		{SellerEmail: "second@x.com", Amount: "50"},
	}

	groups := TopSellers(sales, MetricAmount)

	require.Len(t, groups, 2)
	assert.Equal(t, "first@x.com", groups[0].Email)
	assert.Equal(t, "second@x.com", groups[1].Email)
}

func TestTopSellersUnknownSentinel(t *testing.T) {
	groups := TopSellers([]*models.Sale{{Amount: "30"}}, MetricAmount)

	require.Len(t, groups, 1)
	assert.Equal(t, UnknownSeller, groups[0].Email)
}

func TestPageSlicing(t *testing.T) {
	var sales []*models.Sale
	for i := 0; i < 13; i++ {
		sales = append(sales, &models.Sale{ID: fmt.Sprintf("%d", i)})
	}

	assert.Equal(t, 3, PageCount(len(sales), 6))

	// Pages must partition the list: no overlap, nothing dropped.
	var seen []*models.Sale
	for p := 1; p <= PageCount(len(sales), 6); p++ {
		seen = append(seen, Page(sales, 6, p)...)
	}
	assert.Equal(t, sales, seen)

	assert.Len(t, Page(sales, 6, 3), 1)
	assert.Empty(t, Page(sales, 6, 4), "out-of-range page yields an empty slice")
	assert.Empty(t, Page(sales, 6, 0))
	assert.Empty(t, Page(sales, 0, 1))
}

func TestPageCountEmpty(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 6))
}
