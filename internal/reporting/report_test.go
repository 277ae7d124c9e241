package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-backend/internal/models"
)

func TestBuildReportPartitionsByStatus(t *testing.T) {
	sales := []*models.Sale{
		{ID: "1", Date: "2024-06-01", Status: models.StatusCompleted, Amount: "100"},
		{ID: "2", Date: "2024-06-02", Status: models.StatusPending, Amount: "50"},
		{ID: "3", Date: "2024-06-03", Status: models.StatusCancelled, Amount: "30"},
		{ID: "4", Date: "2024-06-04", Status: "", Amount: "10"}, // blank status lands in Pending
		{ID: "5", Date: "2024-07-01", Status: models.StatusCompleted, Amount: "999"}, // outside range
		{ID: "6", Date: "", Status: models.StatusCompleted, Amount: "999"},           // no date
	}

	report, err := BuildReport(sales, "2024-06-01", "2024-06-30")
	require.NoError(t, err)

	require.Len(t, report.Sections, 3)
	assert.Equal(t, SectionApproved, report.Sections[0].Name)
	assert.Equal(t, SectionPending, report.Sections[1].Name)
	assert.Equal(t, SectionCancelled, report.Sections[2].Name)

	// Union of partitions == records in range, no duplication, no omission.
	var ids []string
	for _, sec := range report.Sections {
		assert.Equal(t, ReportColumns, sec.Headers)
		for _, row := range sec.Rows {
			ids = append(ids, row[0])
		}
	}
	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, ids)
}

func TestBuildReportOmitsEmptySections(t *testing.T) {
	sales := []*models.Sale{
		{ID: "1", Date: "2024-06-01", Status: models.StatusCancelled, Amount: "30"},
	}

	report, err := BuildReport(sales, "2024-06-01", "2024-06-30")
	require.NoError(t, err)

	require.Len(t, report.Sections, 1)
	assert.Equal(t, SectionCancelled, report.Sections[0].Name)
}

func TestBuildReportEmptyRange(t *testing.T) {
	sales := []*models.Sale{
		{ID: "1", Date: "2024-06-01", Status: models.StatusCompleted, Amount: "30"},
	}

	report, err := BuildReport(sales, "2025-01-01", "2025-01-31")

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestBuildReportRangeIsInclusive(t *testing.T) {
	sales := []*models.Sale{
		{ID: "start", Date: "2024-06-01", Status: models.StatusPending, Amount: "1"},
		{ID: "end", Date: "2024-06-30", Status: models.StatusPending, Amount: "1"},
	}

	report, err := BuildReport(sales, "2024-06-01", "2024-06-30")
	require.NoError(t, err)

	require.Len(t, report.Sections, 1)
	assert.Len(t, report.Sections[0].Rows, 2)
}

func TestReportRowProjection(t *testing.T) {
	withProof := &models.Sale{
		ID: "1", Date: "2024-06-01", City: "Cancun", EntryTime: "14:00",
		SellerEmail: "a@x.com", ReferredBy: "b@x.com", ReservationFor: "Smith",
		Quantity: 4, PackageType: "VIP", Amount: "100", TotalAmount: "150.5",
		PaymentType: models.PaymentTypeDeposit, PaymentMethod: "Efectivo",
		AdminPaymentMethod: "Tarjeta", Folio: "A-123", WristbandColor: "Green",
		Observation: "walk-in", PaymentProofURL: "https://img.example/p.png",
		Status: models.StatusCompleted,
	}
	noProof := &models.Sale{
		ID: "2", Date: "2024-06-02", Amount: "80",
		PaymentType: models.PaymentTypeNoDeposit, Status: models.StatusCompleted,
	}

	report, err := BuildReport([]*models.Sale{withProof, noProof}, "2024-06-01", "2024-06-30")
	require.NoError(t, err)

	rows := report.Sections[0].Rows
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"1", "2024-06-01", "Cancun", "14:00", "a@x.com", "b@x.com", "Smith",
		"4", "VIP", "150.50", "100.00", "YES", "Efectivo", "Tarjeta",
		"A-123", "Green", "walk-in", "https://img.example/p.png",
	}, rows[0])

	assert.Equal(t, "NO", rows[1][11], "deposit flag")
	assert.Equal(t, NoProofSentinel, rows[1][17])
	assert.Equal(t, "80.00", rows[1][9], "effective total falls back to amount")
}

func TestReportFilename(t *testing.T) {
	r := &Report{StartDate: "2024-06-01", EndDate: "2024-06-30"}
	assert.Equal(t, "Sales_Report_2024-06-01_to_2024-06-30", r.Filename())
}
