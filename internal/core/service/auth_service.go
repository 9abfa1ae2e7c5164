package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/core/domain"
	"github.com/techchallenge/user-management/internal/core/ports"
)

// TokenConfig describes the JWTs issued on login.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService authenticates employees by email and password.
type AuthService struct {
	repo   ports.EmployeeRepository
	hasher ports.PasswordHasher
	token  TokenConfig
	logger zerolog.Logger
}

func NewAuthService(repo ports.EmployeeRepository, hasher ports.PasswordHasher, token TokenConfig, logger zerolog.Logger) *AuthService {
	if token.TTL <= 0 {
		token.TTL = time.Hour
	}
	return &AuthService{repo: repo, hasher: hasher, token: token, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ports.EmployeeResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	employee, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	hash := s.hasher.Hash(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(employee.PasswordHash)) != 1 {
		s.logger.Warn().Int64("employee_id", employee.ID).Msg("login rejected: wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}
	if !employee.IsActive {
		return "", nil, domain.ErrInactiveEmployee
	}

	token, err := s.generateToken(employee)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("employee_id", employee.ID).Msg("employee logged in")
	return token, toEmployeeResponse(employee), nil
}

func (s *AuthService) generateToken(e *domain.Employee) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(e.ID, 10),
		"email": e.Email,
		"role":  e.Role.String(),
		"iss":   s.token.Issuer,
		"aud":   s.token.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(s.token.TTL).Unix(),
		"jti":   uuid.NewString(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.token.Secret))
}
