package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapLoginError(t *testing.T) {
	other := errors.New("dial tcp: connection refused")

	tests := []struct {
		name    string
		err     error
		want    error
		wantMsg string
	}{
		{name: "nil", err: nil, want: nil},
		{
			name:    "unauthorized with json detail",
			err:     fmt.Errorf("%w: %s", adapter.ErrUnauthorized, `{"detail":"Incorrect username or password"}`),
			want:    ErrWrongCredentials,
			wantMsg: "Incorrect username or password",
		},
		{
			name:    "bad request plain body",
			err:     fmt.Errorf("%w: %s", adapter.ErrBadRequest, "missing field"),
			want:    ErrWrongCredentials,
			wantMsg: "missing field",
		},
		{
			name:    "forbidden",
			err:     fmt.Errorf("%w: %s", adapter.ErrForbidden, `{"detail":"agreement required"}`),
			want:    ErrLoginForbidden,
			wantMsg: "agreement required",
		},
		{name: "other errors pass through", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapLoginError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			if tt.wantMsg != "" {
				assert.Contains(t, got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestExtractDetail_ValidationList(t *testing.T) {
	err := fmt.Errorf("%w: %s", adapter.ErrBadRequest, `{"detail":[{"loc":["body","username"],"msg":"field required"}]}`)

	assert.Contains(t, extractDetail(err), "field required")
}
