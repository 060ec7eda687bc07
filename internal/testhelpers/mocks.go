package testhelpers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/healthshop/backend/internal/types"
)

// MockTokenValidator is a mock implementation of middleware.TokenValidator
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// StaticTokenValidator accepts any bearer token and authenticates it as
// UserID.
type StaticTokenValidator struct {
	UserID uuid.UUID
}

func (v StaticTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	return &types.TokenClaims{UserID: v.UserID, Username: "testuser"}, nil
}

// JSONBody encodes v for use as a request body.
func JSONBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	return bytes.NewBuffer(b)
}
