package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := GenerateJWT(42, testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "matchfeemate", claims.Issuer)
}

func TestValidateJWTRejects(t *testing.T) {
	tokenString, err := GenerateJWT(42, testSecret, 15)
	require.NoError(t, err)

	expired, err := GenerateJWT(42, testSecret, -5)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr string
	}{
		{"empty token", "", testSecret, "token string is empty"},
		{"empty secret", tokenString, "", "jwt secret key is empty"},
		{"wrong secret", tokenString, "other-secret", "signature is invalid"},
		{"expired token", expired, testSecret, "token has expired"},
		{"garbage token", "not.a.jwt", testSecret, "could not parse token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, tt.secret)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateJWTRejectsZeroAccountID(t *testing.T) {
	tokenString, err := GenerateJWT(0, testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account_id claim is missing or zero")
}
