package phone

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr bool
	}{
		{"us national", "(212) 555-0123", "US", "+12125550123", false},
		{"already e164", "+12125550123", "US", "+12125550123", false},
		{"garbage", "not-a-number", "US", "", true},
		{"too short", "12", "US", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, tt.region)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("expected ErrInvalidNumber, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("+12125550123", "US") {
		t.Error("valid number rejected")
	}
	if IsValid("", "US") {
		t.Error("empty number accepted")
	}
}
