package services

import (
	"context"
	"errors"

	"sales-backend/internal/auth"
	"sales-backend/internal/cache"
	"sales-backend/internal/models"
	"sales-backend/internal/repositories"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Login authenticates a user and returns a JWT token. Accounts with 2FA
// enabled get a short-lived pending token instead and must complete the
// verification step.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Skip bcrypt when these exact credentials verified recently
	if _, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); !ok {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, errors.New("invalid email or password")
		}
		cache.CacheAuth(ctx, req.Email, req.Password, int64(user.ID))
	}

	if !user.IsActive {
		return nil, errors.New("account suspended")
	}

	if user.TOTPEnabled {
		tempToken, err := s.JWTManager.GenerateTempToken(user)
		if err != nil {
			return nil, err
		}
		return &models.AuthResponse{
			Token:       tempToken,
			Requires2FA: true,
		}, nil
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// CompleteLogin issues the full session token once the 2FA step passed.
func (s *UserService) CompleteLogin(ctx context.Context, userID int) (*models.AuthResponse, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// CreateUser creates an account with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, errors.New("name, email, and password are required")
	}

	existing, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateUserCaches(ctx)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// UpdateUser updates name, email, role, and optionally the password.
func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	user.PasswordHash = ""

	if req.Password != "" {
		hashedPassword, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateUserCaches(ctx)
	return s.Repo.Get(ctx, id)
}

// ToggleActiveStatus suspends or reinstates an account
func (s *UserService) ToggleActiveStatus(ctx context.Context, id int, isActive bool) error {
	if err := s.Repo.ToggleActiveStatus(ctx, id, isActive); err != nil {
		return err
	}
	cache.InvalidateUserCaches(ctx)
	return nil
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateUserCaches(ctx)
	return nil
}
