package handlers

import (
	"encoding/json"
	"net/http"

	"sales-backend/internal/middleware"
	"sales-backend/internal/repositories"
	"sales-backend/internal/services"
	"sales-backend/pkg/utils"
)

type TOTPHandler struct {
	TOTPService *services.TOTPService
	UserRepo    *repositories.UserRepository
}

func NewTOTPHandler(totpService *services.TOTPService, userRepo *repositories.UserRepository) *TOTPHandler {
	return &TOTPHandler{
		TOTPService: totpService,
		UserRepo:    userRepo,
	}
}

// SetupTOTP initiates 2FA setup - returns secret and QR code
func (h *TOTPHandler) SetupTOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.UserRepo.Get(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}

	if user.TOTPEnabled {
		utils.Error(w, http.StatusBadRequest, "2FA is already enabled")
		return
	}

	response, err := h.TOTPService.GenerateSetup(r.Context(), user)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate 2FA setup")
		return
	}

	utils.JSON(w, http.StatusOK, response)
}

// EnableTOTP verifies the code and turns 2FA on
func (h *TOTPHandler) EnableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		utils.Error(w, http.StatusBadRequest, "Verification code is required")
		return
	}

	if err := h.TOTPService.VerifyAndEnable(r.Context(), userID, req.Code); err != nil {
		if _, ok := err.(*services.TOTPError); ok {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to enable 2FA")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"enabled": true})
}

// DisableTOTP turns off 2FA after verifying password and code
func (h *TOTPHandler) DisableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req struct {
		Password string `json:"password"`
		Code     string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" || req.Code == "" {
		utils.Error(w, http.StatusBadRequest, "Password and verification code are required")
		return
	}

	if err := h.TOTPService.Disable(r.Context(), userID, req.Password, req.Code); err != nil {
		if _, ok := err.(*services.TOTPError); ok {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to disable 2FA")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"enabled": false})
}
