package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveVaultState(t *testing.T) {
	tests := []struct {
		name             string
		liquidityRequest bool
		acceptedOffer    bool
		expected         VaultState
	}{
		{name: "nothing set", expected: VaultStateIdle},
		{name: "only liquidity request", liquidityRequest: true, expected: VaultStatePending},
		{name: "request and offer", liquidityRequest: true, acceptedOffer: true, expected: VaultStateActive},
		// request already consumed but offer still recorded
		{name: "only offer", acceptedOffer: true, expected: VaultStateActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveVaultState(tt.liquidityRequest, tt.acceptedOffer))
		})
	}
}

func TestAsError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, AsError(nil))
	})
	t.Run("typed error is kept", func(t *testing.T) {
		original := NewErrorWithMsg(http.StatusForbidden, Forbidden, "factory is not allowed")
		wrapped := fmt.Errorf("query failed: %w", original)

		assert.Same(t, original, AsError(wrapped))
	})
	t.Run("plain error becomes internal", func(t *testing.T) {
		err := AsError(errors.New("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, InternalServiceError, err.ErrorCode)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
