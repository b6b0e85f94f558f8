package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// ClientTokenTTL is how long a browser keeps its client identity.
const ClientTokenTTL = 30 * 24 * time.Hour

var ErrInvalidClientToken = errors.New("invalid client token")

// ClientTokenService issues and validates the signed tokens that bind a browser
// to its storefront namespace.
type ClientTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewClientTokenService(secret string) *ClientTokenService {
	return &ClientTokenService{
		secret: []byte(secret),
		ttl:    ClientTokenTTL,
		now:    time.Now,
	}
}

// Issue mints a token for a fresh client id.
func (s *ClientTokenService) Issue() (token, clientID string, err error) {
	clientID = uuid.NewString()
	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"client_id": clientID,
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	})

	token, err = t.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign client token: %w", err)
	}
	return token, clientID, nil
}

// Validate checks the signature and expiry and returns the client id.
func (s *ClientTokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidClientToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidClientToken
	}
	clientID, _ := claims["client_id"].(string)
	if _, err := uuid.Parse(clientID); err != nil {
		return "", fmt.Errorf("%w: bad client_id", ErrInvalidClientToken)
	}
	return clientID, nil
}
