package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"sales-backend/internal/cache"
	"sales-backend/internal/live"
	"sales-backend/internal/metrics"
	"sales-backend/internal/models"
	"sales-backend/internal/repositories"
	"sales-backend/internal/storage"

	"github.com/google/uuid"
)

type SaleService struct {
	Repo   *repositories.SaleRepository
	Hub    *live.Hub
	Proofs *storage.ProofStore
}

func NewSaleService(repo *repositories.SaleRepository, hub *live.Hub, proofs *storage.ProofStore) *SaleService {
	return &SaleService{
		Repo:   repo,
		Hub:    hub,
		Proofs: proofs,
	}
}

// CreateSale records a seller submission. Every new record starts Pending;
// admin fields stay empty until review.
func (s *SaleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest, sellerID, sellerEmail string) (*models.Sale, error) {
	if req.Date == "" || req.City == "" {
		return nil, errors.New("date and city are required")
	}
	if req.Amount == "" {
		return nil, errors.New("amount is required")
	}
	qty := req.Quantity
	if qty < 0 {
		qty = 0
	}

	sale := &models.Sale{
		ID:             uuid.NewString(),
		Date:           req.Date,
		City:           req.City,
		Quantity:       qty,
		Amount:         req.Amount,
		SellerEmail:    sellerEmail,
		SellerID:       sellerID,
		ReferredBy:     req.ReferredBy,
		PaymentType:    req.PaymentType,
		PaymentMethod:  req.PaymentMethod,
		ReservationFor: req.ReservationFor,
		Status:         models.StatusPending,
	}

	if err := s.Repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	metrics.SalesRecordedTotal.Inc()
	cache.InvalidateSaleCaches(ctx)
	s.publishSnapshot(ctx)
	return sale, nil
}

// ListSales returns every record, newest first, caching the snapshot briefly
// since the dashboards poll it.
func (s *SaleService) ListSales(ctx context.Context) ([]*models.Sale, error) {
	if data, ok := cache.GetCached(ctx, cache.SalesListKey); ok {
		var sales []*models.Sale
		if err := json.Unmarshal(data, &sales); err == nil {
			return sales, nil
		}
	}

	sales, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sales); err == nil {
		cache.SetCached(ctx, cache.SalesListKey, data, time.Minute)
	}
	return sales, nil
}

// ListSellerSales returns one seller's own records.
func (s *SaleService) ListSellerSales(ctx context.Context, sellerID string) ([]*models.Sale, error) {
	return s.Repo.ListBySeller(ctx, sellerID)
}

func (s *SaleService) GetSale(ctx context.Context, id string) (*models.Sale, error) {
	return s.Repo.Get(ctx, id)
}

// ReviewSale applies an admin decision to a record and returns the updated
// state. Cancelling only touches status and observation; the admin fields
// already on the record stay put.
func (s *SaleService) ReviewSale(ctx context.Context, id string, req *models.ReviewSaleRequest) (*models.Sale, error) {
	if req.Status == "" {
		return nil, errors.New("status is required")
	}

	patch := models.NewSalePatch(*req)
	if err := s.Repo.Patch(ctx, id, &patch); err != nil {
		return nil, err
	}

	sale, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.SalesReviewedTotal.WithLabelValues(req.Status).Inc()
	cache.InvalidateSaleCaches(ctx)
	s.publishSnapshot(ctx)
	return sale, nil
}

// AttachProof uploads a payment-proof image and links it to the record.
func (s *SaleService) AttachProof(ctx context.Context, id, filename, contentType string, body io.Reader) (string, error) {
	if s.Proofs == nil {
		return "", errors.New("proof storage is not configured")
	}

	if _, err := s.Repo.Get(ctx, id); err != nil {
		return "", err
	}

	url, err := s.Proofs.PutProof(ctx, id, filename, contentType, body)
	if err != nil {
		return "", err
	}

	if err := s.Repo.SetProofURL(ctx, id, url); err != nil {
		return "", err
	}

	cache.InvalidateSaleCaches(ctx)
	s.publishSnapshot(ctx)
	return url, nil
}

// publishSnapshot pushes the fresh collection to live subscribers. Feed
// delivery is best effort; a failed read only costs the push.
func (s *SaleService) publishSnapshot(ctx context.Context) {
	if s.Hub == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sales, err := s.Repo.List(ctx)
	if err != nil {
		log.Printf("[Live] snapshot publish skipped: %v", err)
		return
	}
	s.Hub.Publish(sales)
	metrics.LiveFeedSubscribers.Set(float64(s.Hub.SubscriberCount()))
}
