package services

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"testing"

	"sales-backend/internal/models"
	"sales-backend/internal/reporting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) *reporting.Report {
	t.Helper()
	sales := []*models.Sale{
		{ID: "a", Date: "2024-06-10", City: "Cancun", SellerEmail: "a@x.com", Amount: "100", Status: models.StatusCompleted},
		{ID: "b", Date: "2024-06-11", City: "Tulum", SellerEmail: "b@x.com", Amount: "50", Status: models.StatusPending},
		{ID: "c", Date: "2024-06-12", City: "Cancun", SellerEmail: "a@x.com", Amount: "75", Status: models.StatusCancelled},
	}
	report, err := reporting.BuildReport(sales, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	return report
}

func TestGenerateReportCSVHasSectionsAndRows(t *testing.T) {
	svc := &ReportService{}
	data, err := svc.GenerateReportCSV(sampleReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	var cells []string
	for _, rec := range records {
		cells = append(cells, rec[0])
	}
	assert.Contains(t, cells, reporting.SectionApproved)
	assert.Contains(t, cells, reporting.SectionPending)
	assert.Contains(t, cells, reporting.SectionCancelled)
	assert.Contains(t, cells, "a") // record IDs survive the round trip
	assert.Contains(t, cells, "b")
}

func TestGenerateReportXLSXSheetPerSection(t *testing.T) {
	svc := &ReportService{}
	data, err := svc.GenerateReportXLSX(sampleReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{
		reporting.SectionApproved,
		reporting.SectionPending,
		reporting.SectionCancelled,
	}, sheets)

	header, err := f.GetCellValue(reporting.SectionApproved, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	id, err := f.GetCellValue(reporting.SectionApproved, "A2")
	require.NoError(t, err)
	assert.Equal(t, "a", id)
}

func TestGenerateReportPDFProducesDocument(t *testing.T) {
	svc := &ReportService{}
	data, err := svc.GenerateReportPDF(sampleReport(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateSellerStatementPDF(t *testing.T) {
	svc := &ReportService{}
	data, err := svc.GenerateSellerStatementPDF(&SellerStatementData{
		Email: "a@x.com",
		Sales: []*models.Sale{
			{Date: "2024-06-10", City: "Cancun", Quantity: 4, Amount: "100", Status: models.StatusCompleted},
		},
		Totals: reporting.StatusTotals{Earned: 100},
		Pax:    4,
	}, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestCreateStatementZipContainsOneFilePerSeller(t *testing.T) {
	svc := &ReportService{}
	data, err := svc.CreateStatementZip(map[string][]byte{
		"a@x.com": []byte("pdf-a"),
		"b@x.com": []byte("pdf-b"),
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"statement_a@x.com.pdf", "statement_b@x.com.pdf"}, names)
}
