package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrInvalidToken       = errors.New("недействительный токен")
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, validate *validator.Validate) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		validate: validate,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	if err := ValidateStruct(s.validate, req); err != nil {
		return nil, err
	}

	if err := s.ensureFree(ctx, "username", req.Username, s.userRepo.GetUserByUsername); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, "email", req.Email, s.userRepo.GetUserByEmail); err != nil {
		return nil, err
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	user := &models.User{
		Username:               req.Username,
		Email:                  req.Email,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Role:                   models.RoleUser,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewValidationError("username", "пользователь уже существует")
		}
		return nil, &StoreError{Op: "create user", Err: err}
	}

	return user, nil
}

// ensureFree reports a validation error when lookup finds an existing user
func (s *authService) ensureFree(ctx context.Context, field, value string,
	lookup func(context.Context, string) (*models.User, error)) error {
	existing, err := lookup(ctx, value)
	if err == nil && existing != nil {
		return NewValidationError(field, fmt.Sprintf("пользователь с %s %s уже существует", field, value))
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return &StoreError{Op: "get user", Err: err}
	}
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrWrongPassword) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", &StoreError{Op: "verify password", Err: err}
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", "", fmt.Errorf("недействительный refresh token: %w", ErrInvalidToken)
		}
		return nil, "", "", &StoreError{Op: "get user by refresh token", Err: err}
	}

	return s.issueTokens(ctx, user)
}

// issueTokens signs a new access token and rotates the refresh token
func (s *authService) issueTokens(ctx context.Context, user *models.User) (*models.User, string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.userRepo.UpdateRefreshToken(ctx, user.UserID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", &StoreError{Op: "update refresh token", Err: err}
	}

	user.RefreshToken = refreshToken
	user.RefreshTokenExpiryTime = refreshTokenExpiry

	return user, accessToken, refreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.UserID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return token, nil
}

func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims: %w", ErrInvalidToken)
	}

	userID, ok1 := claims["user_id"].(string)
	username, ok2 := claims["username"].(string)
	role, ok3 := claims["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("неверные данные в токене: %w", ErrInvalidToken)
	}

	return &models.User{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}
