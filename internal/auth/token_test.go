package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/types"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", "healthshop")
	userID := uuid.New()

	token, err := svc.Generate(userID, "testuser")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "healthshop", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", "healthshop")
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := svc.Generate(uuid.New(), "testuser")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsForeignTokens(t *testing.T) {
	svc := NewTokenService("test-secret", "healthshop")

	other, err := NewTokenService("other-secret", "healthshop").Generate(uuid.New(), "x")
	require.NoError(t, err)
	_, err = svc.ValidateToken(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// "none" is never an accepted algorithm
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{UserID: uuid.New()})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRequiresUserID(t *testing.T) {
	svc := NewTokenService("test-secret", "healthshop")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
