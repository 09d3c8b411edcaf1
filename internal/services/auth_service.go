package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/results"
)

// AuthService handles registration, login and token validation. The rest of
// the system trusts the uint user id it extracts from a verified token.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}

// Register creates a new account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (results.Result[string], error) {
	existing, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return results.Result[string]{}, err
	}
	if existing != nil {
		return results.DuplicatedResult[string](MsgUsernameTaken), nil
	}

	existing, err = s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return results.Result[string]{}, err
	}
	if existing != nil {
		return results.DuplicatedResult[string](MsgEmailTaken), nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return results.Result[string]{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return results.Result[string]{}, err
	}
	return results.CreatedResult(MsgUserRegistered), nil
}

// Login verifies the credentials and issues a signed token. Whether the
// username exists is deliberately not revealed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (results.Result[dto.TokenResponse], error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return results.Result[dto.TokenResponse]{}, err
	}
	if user == nil {
		return results.FailureResult[dto.TokenResponse](MsgInvalidCredentials), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return results.FailureResult[dto.TokenResponse](MsgInvalidCredentials), nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return results.Result[dto.TokenResponse]{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return results.Ok(dto.TokenResponse{Token: signed}), nil
}

// ValidateToken parses and verifies a token, returning the caller's user id.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	// JSON numbers decode as float64.
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID < 1 {
		return 0, fmt.Errorf("user id not found in claims")
	}
	return uint(rawID), nil
}
