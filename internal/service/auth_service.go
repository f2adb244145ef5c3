package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/hash"
	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/token"

	"gorm.io/gorm"
)

// AuthService handles admin panel sign-in.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
	// EnsureAdmin creates the admin account when no account with that email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *token.JWTManager
	blacklist  repository.TokenBlacklist
}

// NewAuthService creates an AuthService. blacklist may be nil, in which case logout is a no-op.
func NewAuthService(userRepo repository.UserRepository, jwtManager *token.JWTManager, blacklist repository.TokenBlacklist) AuthService {
	return &authService{userRepo: userRepo, jwtManager: jwtManager, blacklist: blacklist}
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	log.Infow("admin signed in", "email", user.Email)
	return s.issue(user.ID, user.Email, user.Role)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil || claims.TokenType != token.TypeRefresh {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return s.issue(user.ID, user.Email, user.Role)
}

// Logout blacklists the access token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtManager.VerifyToken(accessToken)
	if err != nil {
		return ErrInvalidToken
	}
	if s.blacklist == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.Add(ctx, accessToken, ttl); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.Create(ctx, &model.User{Email: email, Password: hashed, Role: model.RoleAdmin}); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	log.Infow("admin account created", "email", email)
	return nil
}

func (s *authService) issue(id uint, email, role string) (*model.TokenPair, error) {
	access, err := s.jwtManager.GenerateToken(id, email, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(id, email, role)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{Token: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
