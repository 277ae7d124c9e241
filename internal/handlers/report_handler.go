package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"sales-backend/internal/reporting"
	"sales-backend/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// dateRange reads and validates the start/end query parameters.
func dateRange(r *http.Request) (string, string, error) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		return "", "", errors.New("start and end query parameters are required (YYYY-MM-DD)")
	}
	if start > end {
		return "", "", errors.New("start must not be after end")
	}
	return start, end, nil
}

func (h *ReportHandler) buildReport(w http.ResponseWriter, r *http.Request) (*reporting.Report, bool) {
	start, end, err := dateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	report, err := h.Service.GetReport(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, reporting.ErrEmptyReport) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return nil, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return report, true
}

// DownloadXLSX streams the report as an Excel workbook.
func (h *ReportHandler) DownloadXLSX(w http.ResponseWriter, r *http.Request) {
	report, ok := h.buildReport(w, r)
	if !ok {
		return
	}

	data, err := h.Service.GenerateReportXLSX(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, report.Filename()))
	w.Write(data)
}

// DownloadCSV streams the report as CSV.
func (h *ReportHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	report, ok := h.buildReport(w, r)
	if !ok {
		return
	}

	data, err := h.Service.GenerateReportCSV(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, report.Filename()))
	w.Write(data)
}

// DownloadPDF streams the report as a PDF table.
func (h *ReportHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	report, ok := h.buildReport(w, r)
	if !ok {
		return
	}

	data, err := h.Service.GenerateReportPDF(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, report.Filename()))
	w.Write(data)
}

// DownloadStatementsZip streams a ZIP of per-seller statement PDFs.
func (h *ReportHandler) DownloadStatementsZip(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdfs, err := h.Service.GenerateBulkStatementPDFs(r.Context(), start, end)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfs) == 0 {
		http.Error(w, "no sales in the requested date range", http.StatusNotFound)
		return
	}

	data, err := h.Service.CreateStatementZip(pdfs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Seller_Statements_%s_to_%s.zip"`, start, end))
	w.Write(data)
}
