package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/henrymaxel/platform-mvp-sub000/internal/api/shared/errors"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
		wantClient bool
	}{
		{"invalid signature", fmt.Errorf("%w: recovered signer mismatch", domain.ErrInvalidSignature), http.StatusUnauthorized, apierrors.ErrCodeInvalidSignature, true},
		{"wallet not found", domain.ErrWalletNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound, true},
		{"asset not found", domain.ErrAssetNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound, true},
		{"subscription limit", domain.ErrSubscriptionLimitExceeded, http.StatusForbidden, apierrors.ErrCodeSubscriptionLimit, true},
		{"unsupported chain", domain.ErrUnsupportedChain, http.StatusUnprocessableEntity, apierrors.ErrCodeValidationFailed, true},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, apierrors.ErrCodeInternalError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr, client := apierrors.FromDomain(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantClient, client)
		})
	}
}

func TestFromDomain_InternalHidesCause(t *testing.T) {
	_, apiErr, _ := apierrors.FromDomain(fmt.Errorf("pq: password authentication failed"))
	assert.Empty(t, apiErr.Details)
	assert.NotContains(t, apiErr.Error(), "password")
}
