// Package ticket issues signed ticket codes for event registrations. The code
// is an HS256 JWT so a check-in scanner can verify it offline against the
// shared signing key.
package ticket

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTicket = errors.New("invalid ticket code")
	ErrExpiredTicket = errors.New("ticket expired")
)

type Claims struct {
	EventID        string    `json:"event_id"`
	RegistrationID uuid.UUID `json:"registration_id"`
	jwt.RegisteredClaims
}

type Issuer struct {
	signingKey []byte
	ttl        time.Duration
}

func NewIssuer(signingKey string, ttl time.Duration) *Issuer {
	return &Issuer{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

func (i *Issuer) Issue(eventID string, registrationID uuid.UUID, now time.Time) (string, error) {
	claims := Claims{
		EventID:        eventID,
		RegistrationID: registrationID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.signingKey)
}

func (i *Issuer) Verify(code string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(code, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidTicket
		}
		return i.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredTicket
		}
		return nil, ErrInvalidTicket
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidTicket
	}

	return claims, nil
}
