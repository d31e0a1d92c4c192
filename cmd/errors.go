package cmd

import (
	"errors"
	"fmt"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
)

// renderError maps the API error taxonomy onto operator-facing advice so the
// user sees what to do next, not a raw status chain.
func renderError(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "Not logged in. Run 'medvault session login' first."
	case api.IsValidation(err):
		return fmt.Sprintf("Request rejected: %v", err)
	case api.IsTransient(err):
		return fmt.Sprintf("Backend unavailable: %v\nCheck api.base_url in the config and retry.", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
