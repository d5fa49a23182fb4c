// Package utils provides helper functions for token creation and hashing.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenAudience is the fixed audience embedded in every access token and
// required by the verification middleware.
const TokenAudience = "account"

// AccessToken is a signed HS256 JWT along with its expiry time.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken signs an access token for the given subject. The payload
// carries sub, exp, iat and the fixed audience; caller-supplied claims are
// nested under a single "claims" key, and the key is omitted entirely when
// no claims are given.
func NewAccessToken(secret, subject string, claims map[string]any, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)

	payload := jwt.MapClaims{
		"sub": subject,
		"aud": TokenAudience,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	if len(claims) > 0 {
		payload["claims"] = claims
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
