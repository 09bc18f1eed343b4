package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Gav1n0112/keya/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestParseToken_Tampered(t *testing.T) {
	token, err := auth.GenerateToken("admin", testSecret, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Mutate one byte in the middle of each segment
	for i, part := range parts {
		mutated := append([]string{}, parts...)
		b := []byte(part)
		mid := len(b) / 2
		if b[mid] == 'A' {
			b[mid] = 'B'
		} else {
			b[mid] = 'A'
		}
		mutated[i] = string(b)

		_, err := auth.ParseToken(strings.Join(mutated, "."), testSecret)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "segment %d", i)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken("admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
