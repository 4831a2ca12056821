package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "authkeeper-test"
	testSignKey = "test-sign-key"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken(testIssuer, 42, "session-token", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "session-token", token.SessionID)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	_, err := GenerateSessionToken("", 42, "session-token", time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateSessionToken(testIssuer, 42, "", time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateSessionToken(testIssuer, 42, "session-token", 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateSessionToken(testIssuer, 42, "session-token", time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_RoundTrip(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, 42, "session-token", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseSessionToken(generated.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "session-token", parsed.SessionID)
}

func TestValidateAndParseSessionToken_WrongKey(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, 42, "session-token", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(generated.SignedString, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, 42, "session-token", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(generated.SignedString, testSignKey, "somebody-else")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	generated, err := GenerateSessionToken(testIssuer, 42, "session-token", time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseSessionToken(generated.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// A token whose subject is not a numeric user ID is rejected even when the
// signature and issuer check out.
func TestValidateAndParseSessionToken_NonNumericSubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice",
		ID:        "session-token",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(raw, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseSessionToken("not-a-jwt", testSignKey, testIssuer)
	assert.Error(t, err)
}
