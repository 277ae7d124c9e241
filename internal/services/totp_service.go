package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"

	"sales-backend/internal/models"
	"sales-backend/internal/repositories"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "SalesTracker"

type TOTPService struct {
	userRepo *repositories.UserRepository
}

func NewTOTPService(userRepo *repositories.UserRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo}
}

// GenerateSetup creates a new TOTP secret and QR code for a user
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	// Store the secret (not yet enabled)
	if err := s.userRepo.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}
	qrBase64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	return &models.TOTPSetupResponse{
		Secret:    key.Secret(),
		QRCodeURL: "data:image/png;base64," + qrBase64,
	}, nil
}

// VerifyAndEnable verifies a TOTP code and enables 2FA for the user
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user.TOTPSecret == "" {
		return ErrNoTOTPSecret
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}

	return s.userRepo.EnableTOTP(ctx, userID)
}

// Verify validates a TOTP code during login
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if !user.TOTPEnabled || user.TOTPSecret == "" {
		return ErrTOTPNotEnabled
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	return nil
}

// Disable disables 2FA for a user after verifying password and current TOTP code
func (s *TOTPService) Disable(ctx context.Context, userID int, password, code string) error {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}

	return s.userRepo.DisableTOTP(ctx, userID)
}

// Custom errors
var (
	ErrNoTOTPSecret    = &TOTPError{Message: "2FA setup not initiated"}
	ErrInvalidTOTPCode = &TOTPError{Message: "invalid verification code"}
	ErrTOTPNotEnabled  = &TOTPError{Message: "2FA is not enabled"}
	ErrInvalidPassword = &TOTPError{Message: "invalid password"}
)

type TOTPError struct {
	Message string
}

func (e *TOTPError) Error() string {
	return e.Message
}
