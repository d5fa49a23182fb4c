package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specterhq/specter/internal/utils"
)

const testSecret = "test-signing-secret"

func parseToken(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithAudience(utils.TokenAudience))
	require.NoError(t, err)
	require.True(t, tok.Valid)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestNewAccessTokenPayload(t *testing.T) {
	t.Parallel()

	subject := "2a9f2a44-9c4f-4c44-b77e-3c1f6ad34f3b"
	token, err := utils.NewAccessToken(testSecret, subject,
		map[string]any{"name": "Test User", "email": "t@example.com"}, 30)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	claims := parseToken(t, token.Token)
	assert.Equal(t, subject, claims["sub"])
	assert.Equal(t, utils.TokenAudience, claims["aud"])

	nested, ok := claims["claims"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Test User", nested["name"])
	assert.Equal(t, "t@example.com", nested["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expected := time.Now().UTC().Add(30 * time.Minute).Unix()
	assert.InDelta(t, expected, int64(exp), 5)
	assert.Equal(t, time.Unix(int64(exp), 0).UTC(), token.Exp.Truncate(time.Second).UTC())
}

func TestNewAccessTokenWithoutClaims(t *testing.T) {
	t.Parallel()

	token, err := utils.NewAccessToken(testSecret, "user456", nil, 5)
	require.NoError(t, err)

	claims := parseToken(t, token.Token)
	assert.Equal(t, "user456", claims["sub"])
	_, present := claims["claims"]
	assert.False(t, present)
}

func TestNewAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := utils.NewAccessToken(testSecret, "user789", nil, 5)
	require.NoError(t, err)

	_, err = jwt.Parse(token.Token, func(tok *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
