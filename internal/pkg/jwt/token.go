package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/fintrackr/fintrackr/internal/pkg/models"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong issuer or audience, expired, or malformed claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the session token payload. The subject carries the
// user id; username and email are custom claims.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim into a user id
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("subject is not a valid user id: %w", err)
	}
	return id, nil
}

// GenerateToken generates a signed session token for the given user
func GenerateToken(userID uuid.UUID, username, email string, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.ExpirationDays) * 24 * time.Hour)

	claims := &Claims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken validates a session token and returns its typed claims.
// Signature, expiry, issuer and audience are all checked; any failure
// yields ErrInvalidToken.
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyAudience(cfg.Audience, true) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
