package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWTToken(t *testing.T) {
	login := time.Now().Truncate(time.Millisecond)

	token, err := GenerateJWTToken("john.doe", login)
	require.NoError(t, err)

	claims, err := ParseJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "john.doe", claims.Username)
	assert.Equal(t, login.UnixMilli(), claims.LoginTime)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, login.Add(SessionTTL), claims.ExpiresAt.Time, time.Second)
}

func TestParseJWTTokenRejectsExpired(t *testing.T) {
	token, err := GenerateJWTToken("john.doe", time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = ParseJWTToken(token)
	require.Error(t, err)
}

func TestParseJWTTokenRejectsForeignSecret(t *testing.T) {
	token, err := GenerateJWTToken("john.doe", time.Now())
	require.NoError(t, err)

	prev := SecretKey
	SecretKey = "another-secret"
	t.Cleanup(func() { SecretKey = prev })

	_, err = ParseJWTToken(token)
	require.Error(t, err)
}

func TestParseJWTTokenRejectsGarbage(t *testing.T) {
	_, err := ParseJWTToken("not-a-token")
	require.Error(t, err)

	_, err = ParseJWTToken(strings.Repeat("a.", 2) + "a")
	require.Error(t, err)
}
