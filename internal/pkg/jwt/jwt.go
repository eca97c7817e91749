package jwt

import (
	"errors"
	"time"

	"campus-booking/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carry the full identity the core consumes: who, in what role, from
// which department, and the assigned venue for caretakers. The issuing
// authentication service lives outside this codebase.
type Claims struct {
	UserID     uuid.UUID  `json:"user_id"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	VenueID    *uuid.UUID `json:"venue_id,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) GenerateToken(actor identity.Actor) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     actor.UserID,
		Role:       actor.Role.String(),
		Department: actor.Department,
		VenueID:    actor.VenueID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (identity.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Actor{}, ErrExpiredToken
		}
		return identity.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return identity.Actor{}, ErrInvalidToken
	}

	role := identity.Role(claims.Role)
	if !role.IsValid() {
		return identity.Actor{}, ErrInvalidToken
	}

	return identity.Actor{
		UserID:     claims.UserID,
		Role:       role,
		Department: claims.Department,
		VenueID:    claims.VenueID,
	}, nil
}
