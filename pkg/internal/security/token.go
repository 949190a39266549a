package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// ErrInvalidToken is the only failure surfaced by token verification.
// Forged, expired and malformed tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("token is invalid or expired")

type Claims struct {
	jwt.RegisteredClaims

	Kind string `json:"token_type"`
}

// TokenReader issues and verifies the signed bearer tokens of this node.
// It is stateless; any process holding the same secret can do both.
type TokenReader struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenReader(secret string, accessTTL, refreshTTL time.Duration) (*TokenReader, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret must not be empty")
	}
	return &TokenReader{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func (v *TokenReader) Issue(subject, kind string) (string, error) {
	ttl := v.accessTTL
	if kind == TokenKindRefresh {
		ttl = v.refreshTTL
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Kind: kind,
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	out, err := tk.SignedString(v.secret)
	if err != nil {
		return out, fmt.Errorf("unable to sign token: %v", err)
	}

	return out, nil
}

func (v *TokenReader) Verify(tokenString string) (Claims, error) {
	var claims Claims
	tk, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !tk.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}

// VerifyKind rejects tokens carrying the wrong type discriminator, so a
// refresh token can never pass where an access token is required.
// Tokens minted before the discriminator existed carry no kind and are
// accepted for backward compatibility.
func (v *TokenReader) VerifyKind(tokenString, kind string) (Claims, error) {
	claims, err := v.Verify(tokenString)
	if err != nil {
		return claims, err
	}
	if len(claims.Kind) > 0 && claims.Kind != kind {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
