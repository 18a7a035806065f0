package theme

import (
	"fmt"
	"strings"
)

// Mode is a desktop appearance preference.
type Mode string

const (
	// Light is the default appearance when nothing else can be detected.
	Light Mode = "light"
	// Dark is used when the desktop reports a dark preference.
	Dark Mode = "dark"
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is one of the two supported modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// ParseMode parses a user-supplied mode name, tolerating case and
// surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("invalid theme %q: must be light or dark", s)
	}
	return m, nil
}
