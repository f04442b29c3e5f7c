package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pliabraaten/restaurant-tracker/internal/config"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/middleware/auth"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
)

var (
	ErrMissingField       = errors.New("name, username, password and confirmation are all required")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// Claims is the identity carried by an access token and placed into the
// request context by the auth middleware.
type Claims struct {
	AccountID int64
	PersonID  int64
	Username  string
}

type AuthService interface {
	Register(name, username, password, confirmation string) (accessToken, refreshToken string, account *models.Account, err error)
	Login(username, password string) (accessToken, refreshToken string, account *models.Account, err error)
	Logout(refreshToken string) error
	RefreshAccessToken(refreshToken string) (newAccessToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
	ChangePassword(accountID int64, current, updated string) error
}

type authService struct {
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	accountRepo repository.AccountRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		accountRepo:      accountRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates the Person and its Account together and starts a session
// for the new account. Nothing is persisted when validation fails.
func (s *authService) Register(name, username, password, confirmation string) (string, string, *models.Account, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" ||
		password == "" || confirmation == "" {
		return "", "", nil, ErrMissingField
	}
	if password != confirmation {
		return "", "", nil, ErrPasswordMismatch
	}

	// Check if username exists
	if _, err := s.accountRepo.FindByUsername(username); err == nil {
		return "", "", nil, ErrUsernameTaken
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", "", nil, err
	}

	person := &models.Person{Name: name}
	account := &models.Account{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	// Person and Account insert in one transaction, see repository
	if err := s.accountRepo.CreateWithPerson(person, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// lost the race against a concurrent registration
			return "", "", nil, ErrUsernameTaken
		}
		return "", "", nil, err
	}
	account.Person = person

	accessToken, refreshToken, err := s.issueTokens(account)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, account, nil
}

// Login authenticates an account and returns access and refresh tokens upon success.
func (s *authService) Login(username, password string) (string, string, *models.Account, error) {
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		// Account not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(account.PasswordHash, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	if err := s.accountRepo.TouchLastLogin(account.ID); err != nil {
		return "", "", nil, err
	}

	accessToken, refreshToken, err := s.issueTokens(account)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, account, nil
}

// Logout revokes the refresh token. Revoking an unknown or already-revoked
// token is a no-op so the operation is idempotent.
func (s *authService) Logout(refreshTokenString string) error {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return nil
	}
	return s.refreshTokenRepo.Revoke(refreshToken.ID)
}

func (s *authService) issueTokens(account *models.Account) (string, string, error) {
	accessToken, err := s.generateAccessToken(account)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.generateRefreshToken(account)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *authService) generateAccessToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"account_id": account.ID,
		"person_id":  account.PersonID,
		"username":   account.Username,
		"exp":        time.Now().Add(s.accessTokenTTL).Unix(),
		"iat":        time.Now().Unix(),
		"type":       "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(account *models.Account) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Token:     uuid.New().String(), // Simple UUID as refresh token
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

func (s *authService) RefreshAccessToken(refreshTokenString string) (string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return "", ErrInvalidToken
	}

	if refreshToken.Revoked {
		return "", ErrInvalidToken
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", ErrExpiredToken
	}

	account, err := s.accountRepo.FindByID(refreshToken.AccountID)
	if err != nil {
		return "", err
	}

	return s.generateAccessToken(account)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// jwt numeric claims decode as float64
	accountID, ok := mapClaims["account_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	personID, ok := mapClaims["person_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := mapClaims["username"].(string)

	return &Claims{
		AccountID: int64(accountID),
		PersonID:  int64(personID),
		Username:  username,
	}, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *authService) ChangePassword(accountID int64, current, updated string) error {
	if updated == "" {
		return ErrMissingField
	}

	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return err
	}

	if err := auth.VerifyPassword(account.PasswordHash, current); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(updated)
	if err != nil {
		return err
	}
	return s.accountRepo.UpdatePassword(accountID, hashedPassword)
}
