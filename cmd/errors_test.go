package cmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
)

func TestRenderErrorClassifiesAPIFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing session gets a login hint",
			err:  fmt.Errorf("load identity: %w", session.ErrNoSession),
			want: "medvault session login",
		},
		{
			name: "validation failure carries the server message",
			err:  &api.APIError{Err: api.ErrValidation, Message: "slot already booked"},
			want: "Request rejected: slot already booked",
		},
		{
			name: "transient failure points at the config",
			err:  &api.APIError{Err: api.ErrTransient, Message: "Bad Gateway"},
			want: "api.base_url",
		},
		{
			name: "anything else renders plainly",
			err:  fmt.Errorf("write document.bin: permission denied"),
			want: "Error: write document.bin: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderError(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("renderError = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
