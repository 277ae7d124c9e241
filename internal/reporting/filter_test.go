package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sales-backend/internal/models"
	"sales-backend/internal/timeutil"
)

// Wednesday 2024-06-12, mid-afternoon business time.
var testNow = time.Date(2024, 6, 12, 15, 30, 0, 0, timeutil.Local)

func sale(date, status, email string) *models.Sale {
	return &models.Sale{Date: date, Status: status, SellerEmail: email, Amount: "10"}
}

func TestFilterAllIsIdentity(t *testing.T) {
	sales := []*models.Sale{
		sale("2024-06-12", models.StatusPending, "a@x.com"),
		sale("", models.StatusCompleted, "b@x.com"), // even blank dates survive "all"
		sale("garbage", models.StatusCancelled, "c@x.com"),
	}

	got := Filter(sales, WindowAll, StatusAll, "", testNow)

	assert.Equal(t, sales, got)
}

func TestFilterDayWindow(t *testing.T) {
	today := sale("2024-06-12", models.StatusPending, "a@x.com")
	yesterday := sale("2024-06-11", models.StatusPending, "a@x.com")

	got := Filter([]*models.Sale{today, yesterday}, WindowDay, StatusAll, "", testNow)

	assert.Equal(t, []*models.Sale{today}, got)
}

func TestFilterWeekWindowStartsSunday(t *testing.T) {
	// 2024-06-09 is the Sunday before testNow (Wednesday 2024-06-12).
	sunday := sale("2024-06-09", models.StatusPending, "a@x.com")
	saturdayBefore := sale("2024-06-08", models.StatusPending, "a@x.com")
	futureDate := sale("2024-06-20", models.StatusPending, "a@x.com")

	got := Filter([]*models.Sale{sunday, saturdayBefore, futureDate}, WindowWeek, StatusAll, "", testNow)

	assert.Equal(t, []*models.Sale{sunday}, got)
}

func TestFilterMonthWindow(t *testing.T) {
	sameMonth := sale("2024-06-01", models.StatusPending, "a@x.com")
	lastMonth := sale("2024-05-31", models.StatusPending, "a@x.com")
	lastYear := sale("2023-06-15", models.StatusPending, "a@x.com")

	got := Filter([]*models.Sale{sameMonth, lastMonth, lastYear}, WindowMonth, StatusAll, "", testNow)

	assert.Equal(t, []*models.Sale{sameMonth}, got)
}

func TestFilterExcludesMissingDateForNarrowWindows(t *testing.T) {
	noDate := sale("", models.StatusPending, "a@x.com")
	badDate := sale("12/06/2024", models.StatusPending, "a@x.com")

	for _, w := range []Window{WindowDay, WindowWeek, WindowMonth} {
		got := Filter([]*models.Sale{noDate, badDate}, w, StatusAll, "", testNow)
		assert.Empty(t, got, "window %s", w)
	}
}

func TestFilterByStatus(t *testing.T) {
	pending := sale("2024-06-12", models.StatusPending, "a@x.com")
	completed := sale("2024-06-12", models.StatusCompleted, "a@x.com")

	got := Filter([]*models.Sale{pending, completed}, WindowAll, models.StatusCompleted, "", testNow)

	assert.Equal(t, []*models.Sale{completed}, got)
}

func TestFilterBySearchTerm(t *testing.T) {
	bySeller := sale("2024-06-12", models.StatusPending, "maria@x.com")
	byReferrer := sale("2024-06-12", models.StatusPending, "jose@x.com")
	byReferrer.ReferredBy = "Maria Lopez"
	byFolio := sale("2024-06-12", models.StatusPending, "luis@x.com")
	byFolio.Folio = "MAR-042"
	noMatch := sale("2024-06-12", models.StatusPending, "pedro@x.com")

	got := Filter([]*models.Sale{bySeller, byReferrer, byFolio, noMatch}, WindowAll, StatusAll, "mar", testNow)

	assert.Equal(t, []*models.Sale{bySeller, byReferrer, byFolio}, got)
}

func TestFilterBlankSearchIsNoOp(t *testing.T) {
	sales := []*models.Sale{sale("2024-06-12", models.StatusPending, "a@x.com")}

	got := Filter(sales, WindowAll, StatusAll, "   ", testNow)

	assert.Equal(t, sales, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	first := sale("2024-06-10", models.StatusPending, "z@x.com")
	second := sale("2024-06-12", models.StatusPending, "a@x.com")
	third := sale("2024-06-11", models.StatusPending, "m@x.com")

	got := Filter([]*models.Sale{first, second, third}, WindowMonth, StatusAll, "", testNow)

	assert.Equal(t, []*models.Sale{first, second, third}, got)
}

func TestParseWindowDefaultsToAll(t *testing.T) {
	assert.Equal(t, WindowAll, ParseWindow(""))
	assert.Equal(t, WindowAll, ParseWindow("fortnight"))
	assert.Equal(t, WindowDay, ParseWindow("day"))
}
