// Package phone validates and normalizes the contact numbers collected on
// profiles and emergency requests before they are submitted.
package phone

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidNumber = errors.New("invalid phone number")

// Normalize parses raw as a phone number (using defaultRegion for national
// formats) and returns it in E.164. Returns ErrInvalidNumber when the number
// does not parse or is not a possible number for its region.
func Normalize(raw, defaultRegion string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsValid reports whether raw parses as a valid number for defaultRegion.
func IsValid(raw, defaultRegion string) bool {
	_, err := Normalize(raw, defaultRegion)
	return err == nil
}
