package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/models/response"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// Claims are the claims carried by an access token
type Claims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService defines administrator authentication
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*response.LoginResponse, error)
	// EnsureAdmin creates the administrator account when it does not exist yet
	EnsureAdmin(ctx context.Context, username, password string) error
	ValidateToken(tokenString string) (*Claims, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	ttl      time.Duration
	logger   *logger.Logger
	now      Clock
}

// NewAuthService creates a new auth service signing HS256 tokens with secret
func NewAuthService(userRepo repository.UserRepository, secret string, ttl time.Duration, logger *logger.Logger, now Clock) AuthService {
	if now == nil {
		now = SystemClock
	}
	return &authService{
		userRepo: userRepo,
		secret:   []byte(secret),
		ttl:      ttl,
		logger:   logger,
		now:      now,
	}
}

// Login checks the credentials and issues a signed token
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*response.LoginResponse, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, invalidInput("username and password are required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, storageError("get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.WithField("username", req.Username).Warn("Login rejected")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithField("username", user.Username).Info("User logged in")

	return &response.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// EnsureAdmin stores a bcrypt hash of password for username unless the user already exists
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !repository.IsNotFound(err) {
		return storageError("get user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.CreateUser(ctx, &models.User{Username: username, Password: string(hash)}); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil
		}
		return storageError("create user", err)
	}

	s.logger.WithField("username", username).Info("Administrator account created")
	return nil
}

// ValidateToken parses and verifies an HS256 token
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}
	return claims, nil
}
