package reporting

import (
	"errors"
	"fmt"
	"strconv"

	"sales-backend/internal/models"
)

// ErrEmptyReport marks a date range with zero matching records. Callers
// surface it as a "nothing to export" outcome, not a failure.
var ErrEmptyReport = errors.New("no sales in the requested date range")

// Section names in emit order.
const (
	SectionApproved  = "Approved"
	SectionPending   = "Pending"
	SectionCancelled = "Cancelled"
)

// NoProofSentinel fills the proof column for records without an uploaded
// payment proof.
const NoProofSentinel = "NO PROOF"

// ReportColumns is the fixed header row of every section. Order and labels
// are part of the externally visible contract: humans consume the export.
var ReportColumns = []string{
	"ID",
	"Date",
	"City",
	"Entry Time",
	"Seller",
	"Referred By",
	"Reservation For",
	"Pax",
	"Package",
	"Total",
	"Balance Due",
	"Deposit Paid",
	"Payment Method (Seller)",
	"Payment Method (Admin)",
	"Folio",
	"Wristband",
	"Observation",
	"Payment Proof",
}

// Section is one status partition of a report: a named table.
type Section struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Report is the structured export document: date-bounded, partitioned by
// status, empty partitions omitted.
type Report struct {
	StartDate string
	EndDate   string
	Sections  []Section
}

// Filename returns the export base name, without extension.
func (r *Report) Filename() string {
	return fmt.Sprintf("Sales_Report_%s_to_%s", r.StartDate, r.EndDate)
}

// BuildReport selects records whose date falls in [startDate, endDate].
// Comparison is lexicographic, which is valid for zero-padded "YYYY-MM-DD",
// and partitions them into Approved/Pending/Cancelled sections. Records with
// a blank date are excluded; records with a blank or unrecognized status land
// in Pending, mirroring the creation default. Returns ErrEmptyReport when
// nothing matches.
func BuildReport(sales []*models.Sale, startDate, endDate string) (*Report, error) {
	var approved, pending, cancelled [][]string

	for _, sale := range sales {
		if sale.Date == "" || sale.Date < startDate || sale.Date > endDate {
			continue
		}
		row := reportRow(sale)
		switch sale.Status {
		case models.StatusCompleted:
			approved = append(approved, row)
		case models.StatusCancelled:
			cancelled = append(cancelled, row)
		default:
			pending = append(pending, row)
		}
	}

	report := &Report{StartDate: startDate, EndDate: endDate}
	for _, part := range []struct {
		name string
		rows [][]string
	}{
		{SectionApproved, approved},
		{SectionPending, pending},
		{SectionCancelled, cancelled},
	} {
		if len(part.rows) == 0 {
			continue
		}
		report.Sections = append(report.Sections, Section{
			Name:    part.name,
			Headers: ReportColumns,
			Rows:    part.rows,
		})
	}

	if len(report.Sections) == 0 {
		return nil, ErrEmptyReport
	}
	return report, nil
}

func reportRow(sale *models.Sale) []string {
	deposit := "NO"
	if sale.DepositPaid() {
		deposit = "YES"
	}
	proof := sale.PaymentProofURL
	if proof == "" {
		proof = NoProofSentinel
	}
	return []string{
		sale.ID,
		sale.Date,
		sale.City,
		sale.EntryTime,
		sale.SellerEmail,
		sale.ReferredBy,
		sale.ReservationFor,
		strconv.Itoa(sale.Quantity),
		sale.PackageType,
		strconv.FormatFloat(sale.EffectiveAmount(), 'f', 2, 64),
		strconv.FormatFloat(models.ParseAmount(sale.Amount), 'f', 2, 64),
		deposit,
		sale.PaymentMethod,
		sale.AdminPaymentMethod,
		sale.Folio,
		sale.WristbandColor,
		sale.Observation,
		proof,
	}
}
