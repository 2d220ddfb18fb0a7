package auth

import (
	"errors"
	"fmt"
	"time"

	"assessment-portal-backend/internal/database/models"
	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims represents JWT token claims issued at login
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service handles registration, credential checks and token issuance
type Service struct {
	users     repository.UserRepositoryInterface
	jwtSecret []byte
	expiry    time.Duration
}

// NewService creates a new auth service
func NewService(users repository.UserRepositoryInterface, jwtSecret string, expiryHours int) *Service {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &Service{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		expiry:    time.Duration(expiryHours) * time.Hour,
	}
}

// UserResponse represents a registered user in responses
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// TokenResponse represents a successful login
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register creates a user with a bcrypt-hashed password
func (s *Service) Register(email, password string) (*UserResponse, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &UserResponse{ID: user.ID, Email: user.Email}, nil
}

// Login verifies the credentials and issues a signed JWT
func (s *Service) Login(email, password string) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &TokenResponse{
		Token: token,
		User:  UserResponse{ID: user.ID, Email: user.Email},
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *Service) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "assessment-portal-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a JWT token
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
