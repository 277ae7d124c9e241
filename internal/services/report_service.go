package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"sales-backend/internal/models"
	"sales-backend/internal/reporting"
	"sales-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

// SellerStatementData holds one seller's records and totals for a statement.
type SellerStatementData struct {
	Email  string
	Sales  []*models.Sale
	Totals reporting.StatusTotals
	Pax    int
}

// ReportService turns the sales snapshot into downloadable documents.
type ReportService struct {
	SaleSvc *SaleService
}

func NewReportService(saleSvc *SaleService) *ReportService {
	return &ReportService{SaleSvc: saleSvc}
}

// GetReport builds the status-partitioned report for a date range.
func (s *ReportService) GetReport(ctx context.Context, startDate, endDate string) (*reporting.Report, error) {
	sales, err := s.SaleSvc.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.BuildReport(sales, startDate, endDate)
}

// GenerateReportXLSX renders the report as a workbook with one sheet per
// status section.
func (s *ReportService) GenerateReportXLSX(report *reporting.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, section := range report.Sections {
		sheet := section.Name
		if i == 0 {
			// Rename the default sheet instead of leaving it empty
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &section.Headers); err != nil {
			return nil, err
		}
		lastCol, err := excelize.ColumnNumberToName(len(section.Headers))
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
			return nil, err
		}

		for r, row := range section.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, err
			}
		}

		if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateReportCSV renders the report as a single CSV with section banners.
func (s *ReportService) GenerateReportCSV(report *reporting.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Sales Report", report.StartDate + " to " + report.EndDate})
	w.Write([]string{""})

	for _, section := range report.Sections {
		w.Write([]string{section.Name})
		w.Write(section.Headers)
		for _, row := range section.Rows {
			w.Write(row)
		}
		w.Write([]string{""})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfColumns is the column subset that fits a landscape A4 page.
var pdfColumns = []struct {
	label string
	width float64
	index int // position in reporting.ReportColumns order
}{
	{"Date", 22, 1},
	{"City", 25, 2},
	{"Seller", 45, 4},
	{"Reservation For", 40, 6},
	{"Pax", 12, 7},
	{"Package", 30, 8},
	{"Total", 20, 9},
	{"Balance", 20, 10},
	{"Deposit", 18, 11},
	{"Folio", 25, 14},
	{"Wristband", 20, 15},
}

// GenerateReportPDF renders the report as a landscape table per section.
func (s *ReportService) GenerateReportPDF(report *reporting.Report) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(277, 12, "Sales Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(277, 8, fmt.Sprintf("Period: %s to %s", report.StartDate, report.EndDate), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	for _, section := range report.Sections {
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(277, 8, fmt.Sprintf("%s (%d)", section.Name, len(section.Rows)), "1", 1, "L", true, 0, "")

		// Table header
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(200, 200, 200)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.label, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		// Table rows
		pdf.SetFont("Arial", "", 9)
		for i, row := range section.Rows {
			// Alternate row colors
			if i%2 == 0 {
				pdf.SetFillColor(255, 255, 255)
			} else {
				pdf.SetFillColor(245, 245, 245)
			}
			for _, col := range pdfColumns {
				val := row[col.index]
				if len(val) > 26 {
					val = val[:23] + "..."
				}
				pdf.CellFormat(col.width, 6, val, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetSellerStatements groups a date range's records per seller.
func (s *ReportService) GetSellerStatements(ctx context.Context, startDate, endDate string) ([]*SellerStatementData, error) {
	sales, err := s.SaleSvc.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	bySeller := make(map[string][]*models.Sale)
	for _, sale := range sales {
		if sale.Date == "" || sale.Date < startDate || sale.Date > endDate {
			continue
		}
		email := sale.SellerEmail
		if email == "" {
			email = reporting.UnknownSeller
		}
		bySeller[email] = append(bySeller[email], sale)
	}

	statements := make([]*SellerStatementData, 0, len(bySeller))
	for email, group := range bySeller {
		pax := 0
		for _, sale := range group {
			if sale.Status == models.StatusCompleted {
				pax += sale.Quantity
			}
		}
		statements = append(statements, &SellerStatementData{
			Email:  email,
			Sales:  group,
			Totals: reporting.SumByStatus(group),
			Pax:    pax,
		})
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].Email < statements[j].Email
	})
	return statements, nil
}

// GenerateSellerStatementPDF generates a PDF statement for a single seller
func (s *ReportService) GenerateSellerStatementPDF(data *SellerStatementData, startDate, endDate string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Seller Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Seller Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Seller Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Seller: %s", data.Email), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Period: %s to %s", startDate, endDate), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Sales table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Sales", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(25, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "City", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Reservation For", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 7, "Pax", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Deposit", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, sale := range data.Sales {
		reservation := sale.ReservationFor
		if len(reservation) > 24 {
			reservation = reservation[:21] + "..."
		}
		deposit := "NO"
		if sale.DepositPaid() {
			deposit = "YES"
		}
		pdf.CellFormat(25, 6, sale.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, sale.City, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, reservation, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, strconv.Itoa(sale.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, sale.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", sale.EffectiveAmount()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, deposit, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Totals
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Totals", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Earned: %.2f", data.Totals.Earned), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Pending: %.2f", data.Totals.Pending), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Pax Sold: %d", data.Pax), "1", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBulkStatementPDFs generates statements for all sellers in parallel
func (s *ReportService) GenerateBulkStatementPDFs(ctx context.Context, startDate, endDate string) (map[string][]byte, error) {
	statements, err := s.GetSellerStatements(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	type pdfResult struct {
		email string
		data  []byte
		err   error
	}

	results := make(chan pdfResult, len(statements))
	jobs := make(chan *SellerStatementData, len(statements))

	// Start 5 workers for PDF generation
	var wg sync.WaitGroup
	numWorkers := 5
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for st := range jobs {
				pdfData, err := s.GenerateSellerStatementPDF(st, startDate, endDate)
				results <- pdfResult{email: st.Email, data: pdfData, err: err}
			}
		}()
	}

	for _, st := range statements {
		jobs <- st
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	pdfs := make(map[string][]byte)
	for r := range results {
		if r.err == nil && r.data != nil {
			pdfs[r.email] = r.data
		}
	}
	return pdfs, nil
}

// CreateStatementZip creates a ZIP file containing all seller statements
func (s *ReportService) CreateStatementZip(pdfs map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for email, pdfData := range pdfs {
		fw, err := zw.Create(fmt.Sprintf("statement_%s.pdf", email))
		if err != nil {
			continue
		}
		fw.Write(pdfData)
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
