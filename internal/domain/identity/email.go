package identity

import (
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, normalized address. The zero value is not a valid
// Email; construct one through NewEmail.
type Email struct {
	value string
}

// NewEmail trims and lowercases raw, then validates it against the address
// grammar. Invalid input returns ErrInvalidEmail, never a coerced value.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if !emailRx.MatchString(v) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
