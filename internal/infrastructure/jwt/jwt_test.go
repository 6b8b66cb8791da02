package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	s := New("super-secret")

	tok, err := s.GenerateJWT("op-7", ScopeWrite+" customers:read", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, "op-7", claims.Operator)
	assert.Equal(t, "op-7", claims.Subject)
	assert.True(t, claims.HasScope(ScopeWrite))
	assert.True(t, claims.HasScope("customers:read"))
	assert.False(t, claims.HasScope("customers"))
}

func TestValidateToken_Table(t *testing.T) {
	makeToken := func(secret string, exp time.Duration) string {
		tok, err := New(secret).GenerateJWT("op-1", ScopeWrite, exp)
		require.NoError(t, err)
		return tok
	}

	noOperator := func() string {
		token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, Claims{
			Scope: ScopeWrite,
			RegisteredClaims: jwtv5.RegisteredClaims{
				ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		s, err := token.SignedString([]byte("k1"))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr error
	}{
		{"valid token", "k1", makeToken("k1", 5*time.Minute), nil},
		{"signature mismatch", "k2", makeToken("k1", 5*time.Minute), ErrInvalidToken},
		{"expired token", "k1", makeToken("k1", -1*time.Minute), ErrInvalidToken},
		{"malformed", "k1", "not-a-jwt", ErrInvalidToken},
		{"missing operator", "k1", noOperator(), ErrInvalidClaims},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			claims, err := New(tt.secret).ValidateToken(tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "op-1", claims.Operator)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
