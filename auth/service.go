package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pkgz/auth/v2"
	"github.com/go-pkgz/auth/v2/avatar"
	"github.com/go-pkgz/auth/v2/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/krishkalaria12/vitalplan-api/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	Issuer   = "vitalplan-api"
	Audience = "vitalplan-app"
)

var ErrInvalidToken = errors.New("invalid token")

type Options struct {
	Secret         string
	TokenDuration  time.Duration
	CookieDuration time.Duration
	URL            string
}

// Service issues and verifies access tokens through go-pkgz/auth.
type Service struct {
	auth *auth.Service
	ttl  time.Duration
	now  func() time.Time
}

func NewService(opts Options) *Service {
	secret := opts.Secret
	service := auth.NewService(auth.Opts{
		SecretReader: token.SecretFunc(func(string) (string, error) {
			return secret, nil
		}),
		TokenDuration:  opts.TokenDuration,
		CookieDuration: opts.CookieDuration,
		Issuer:         Issuer,
		URL:            opts.URL,
		AvatarStore:    avatar.NewNoOp(),
	})

	return &Service{auth: service, ttl: opts.TokenDuration, now: time.Now}
}

// Issue returns a signed token for user.
func (s *Service) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := token.Claims{
		User: &token.User{
			ID:    strconv.FormatUint(uint64(user.ID), 10),
			Name:  user.Name,
			Email: user.Email,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Audience:  []string{Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	}

	tokenStr, err := s.auth.TokenService().Token(claims)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenStr, nil
}

// Parse verifies tokenStr and returns the user ID it carries.
func (s *Service) Parse(tokenStr string) (uint, error) {
	claims, err := s.auth.TokenService().Parse(tokenStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.User == nil {
		return 0, fmt.Errorf("%w: no user in claims", ErrInvalidToken)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		return 0, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	id, err := strconv.ParseUint(claims.User.ID, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad user id %q", ErrInvalidToken, claims.User.ID)
	}
	return uint(id), nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
