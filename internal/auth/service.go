package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kendea1221/Hiromap/internal/session"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// Service issues bearer tokens for the nickname session. Login has no
// credential check: the original product signs in with a display name
// only, so the token just binds subsequent requests to that name.
type Service struct {
	secret   []byte
	sessions *session.Service
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewService(secret string, sessions *session.Service) *Service {
	return &Service{
		secret:   []byte(secret),
		sessions: sessions,
	}
}

func (s *Service) Login(ctx context.Context, name string) (string, TokenResponse, error) {
	username, ok := s.sessions.Login(ctx, name)
	if !ok {
		return "", TokenResponse{}, errors.New("username required")
	}

	token, err := s.signToken(username, sessionTokenTTL)
	if err != nil {
		return "", TokenResponse{}, err
	}
	return username, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(sessionTokenTTL.Seconds()),
	}, nil
}

func (s *Service) Logout(ctx context.Context) {
	s.sessions.Logout(ctx)
}

func (s *Service) Current() string {
	return s.sessions.Current()
}

func (s *Service) ValidateToken(token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func (s *Service) signToken(username string, ttl time.Duration) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}
