package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/auth"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", validator.ValidationErrors{{Field: "email", Message: "email is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"revoked", auth.ErrTokenRevoked, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"not admin", auth.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped not found", fmt.Errorf("load: %w", participant.ErrParticipantNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"username taken", participant.ErrUsernameExists, http.StatusConflict, "CONFLICT"},
		{"duplicate date", attendance.ErrDuplicateDate, http.StatusConflict, "CONFLICT"},
		{"weekend", attendance.ErrDateNotWeekday, http.StatusBadRequest, "BAD_REQUEST"},
		{"roster down", fmt.Errorf("%w: timeout", integrity.ErrDuplicateCheckUnavailable), http.StatusServiceUnavailable, "DUPLICATE_CHECK_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_ClientGone(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("duplicate check aborted: %w", context.Canceled))
	assert.Equal(t, 499, rec.Code)
}

func TestSuccessWithCount(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithCount(rec, []string{"a", "b"}, 2)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.TotalItems)
}
