package handlers

import (
	"encoding/json"
	"net/http"

	"sales-backend/internal/auth"
	"sales-backend/internal/models"
	"sales-backend/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	TOTPService *services.TOTPService
	JWTManager  *auth.JWTManager
}

func NewAuthHandler(userService *services.UserService, totpService *services.TOTPService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
		TOTPService: totpService,
		JWTManager:  jwtManager,
	}
}

// Login authenticates credentials. Accounts with 2FA enabled get a pending
// token and must call Verify2FA to finish.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.UserService.Login(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Verify2FA completes a pending login with a TOTP code.
func (h *AuthHandler) Verify2FA(w http.ResponseWriter, r *http.Request) {
	var req models.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TempToken == "" || req.Code == "" {
		http.Error(w, "Temp token and code are required", http.StatusBadRequest)
		return
	}

	claims, err := h.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		http.Error(w, "Invalid or expired temp token", http.StatusUnauthorized)
		return
	}

	if err := h.TOTPService.Verify(r.Context(), claims.UserID, req.Code); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	resp, err := h.UserService.CompleteLogin(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
