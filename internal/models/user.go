package models

import "time"

// Roles
const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
)

type User struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"` // Never expose in JSON
	Role           string     `json:"role"` // seller, admin or owner
	IsActive       bool       `json:"is_active"` // false = suspended
	TOTPSecret     string     `json:"-"`
	TOTPEnabled    bool       `json:"totp_enabled"`
	TOTPVerifiedAt *time.Time `json:"totp_verified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication.
// When the account has 2FA enabled, Token is a short-lived pending token and
// Requires2FA is set; the client must complete /auth/2fa/verify.
type AuthResponse struct {
	Token       string `json:"token"`
	Requires2FA bool   `json:"requires_2fa,omitempty"`
	User        *User  `json:"user,omitempty"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // Optional
	Role     string `json:"role"`
}

// TOTPSetupResponse carries the provisioning secret and QR code for 2FA
// enrollment.
type TOTPSetupResponse struct {
	Secret    string `json:"secret"`
	QRCodeURL string `json:"qr_code_url"` // base64 PNG data URL
}

// TOTPVerifyRequest carries a 6-digit code plus, during login, the pending
// token issued by step one.
type TOTPVerifyRequest struct {
	Code      string `json:"code"`
	TempToken string `json:"temp_token,omitempty"`
}
