package services

import (
	"context"

	"sales-backend/internal/models"
	"sales-backend/internal/reporting"
	"sales-backend/internal/timeutil"
)

// DashboardSummary is the owner/admin overview for one time window.
type DashboardSummary struct {
	Window      string                  `json:"window"`
	Totals      reporting.StatusTotals  `json:"totals"`
	SaleCount   int                     `json:"sale_count"`
	Leaderboard []reporting.SellerGroup `json:"leaderboard"`
}

// HistoryPage is one page of the filtered sales history.
type HistoryPage struct {
	Sales      []*models.Sale `json:"sales"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	TotalSales int            `json:"total_sales"`
}

// HistoryPageSize matches the history view's client-side page length.
const HistoryPageSize = 6

// DashboardService runs the in-memory aggregation engines over the current
// sales snapshot.
type DashboardService struct {
	SaleSvc *SaleService
}

func NewDashboardService(saleSvc *SaleService) *DashboardService {
	return &DashboardService{SaleSvc: saleSvc}
}

// Summary computes earned/pending totals and the leaderboard for a window.
func (s *DashboardService) Summary(ctx context.Context, window, metric string) (*DashboardSummary, error) {
	sales, err := s.SaleSvc.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	w := reporting.ParseWindow(window)
	filtered := reporting.Filter(sales, w, reporting.StatusAll, "", timeutil.Now())

	return &DashboardSummary{
		Window:      string(w),
		Totals:      reporting.SumByStatus(filtered),
		SaleCount:   len(filtered),
		Leaderboard: reporting.TopSellers(filtered, reporting.ParseMetric(metric)),
	}, nil
}

// History returns one page of records matching window, status, and search
// filters. A sellerID restricts the view to that seller's own records.
func (s *DashboardService) History(ctx context.Context, sellerID, window, status, search string, page int) (*HistoryPage, error) {
	var sales []*models.Sale
	var err error
	if sellerID != "" {
		sales, err = s.SaleSvc.ListSellerSales(ctx, sellerID)
	} else {
		sales, err = s.SaleSvc.ListSales(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := reporting.Filter(sales, reporting.ParseWindow(window), status, search, timeutil.Now())

	if page < 1 {
		page = 1
	}
	totalPages := reporting.PageCount(len(filtered), HistoryPageSize)
	pageSales := reporting.Page(filtered, HistoryPageSize, page)
	if pageSales == nil {
		pageSales = []*models.Sale{}
	}

	return &HistoryPage{
		Sales:      pageSales,
		Page:       page,
		TotalPages: totalPages,
		TotalSales: len(filtered),
	}, nil
}
