package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"sales-backend/internal/middleware"
	"sales-backend/internal/models"
	"sales-backend/internal/repositories"
	"sales-backend/internal/services"

	"github.com/gorilla/mux"
)

// maxProofSize caps payment-proof uploads at 10 MB.
const maxProofSize = 10 << 20

type SaleHandler struct {
	Service *services.SaleService
}

func NewSaleHandler(s *services.SaleService) *SaleHandler {
	return &SaleHandler{Service: s}
}

// CreateSale records a submission under the authenticated seller's identity.
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	email, _ := middleware.GetEmailFromContext(r.Context())

	sale, err := h.Service.CreateSale(r.Context(), &req, strconv.Itoa(userID), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sale)
}

// ListSales returns the full collection for admin and owner views.
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Service.ListSales(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sales == nil {
		sales = []*models.Sale{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}

// ListMySales returns the authenticated seller's own records.
func (h *SaleHandler) ListMySales(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	sales, err := h.Service.ListSellerSales(r.Context(), strconv.Itoa(userID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sales == nil {
		sales = []*models.Sale{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}

func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sale, err := h.Service.GetSale(r.Context(), id)
	if err != nil {
		http.Error(w, "Sale not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sale)
}

// ReviewSale applies an admin decision (approve, cancel, or edit details).
func (h *SaleHandler) ReviewSale(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.ReviewSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.ReviewSale(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sale)
}

// UploadProof attaches a payment-proof image from a multipart form field
// named "proof".
func (h *SaleHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		http.Error(w, "Proof file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.Service.AttachProof(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "Sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"payment_proof_url": url})
}
