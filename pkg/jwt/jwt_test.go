package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(secret, 10086, "access", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(secret, "access", token)
	assert.NoError(t, err)
	assert.Equal(t, int64(10086), claims.UserID)
}

func TestParseTokenWrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "refresh", time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "access", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "access", time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), "access", token)
	assert.Error(t, err)
}
