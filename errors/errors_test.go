package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"missing token", ErrUnauthenticated, http.StatusUnauthorized},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusForbidden},
		{"wrapped forbidden", fmt.Errorf("%w: user does not have access to this workspace", ErrForbidden), http.StatusForbidden},
		{"wrapped not found", fmt.Errorf("%w: workspace", ErrNotFound), http.StatusNotFound},
		{"duplicate membership", fmt.Errorf("%w: already a member", ErrConflict), http.StatusConflict},
		{"duplicate user", ErrUserAlreadyExists, http.StatusConflict},
		{"missing content", fmt.Errorf("%w: content is required", ErrValidation), http.StatusBadRequest},
		{"weak password", ErrInvalidPassword, http.StatusBadRequest},
		{"store failure", fmt.Errorf("badger: closed"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MapToHTTPStatus(tt.err))
		})
	}
}
