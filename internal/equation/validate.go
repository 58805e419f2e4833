package equation

import (
	"fmt"
	"strings"
)

// MaxInputLen bounds equation strings accepted at the service
// boundary. Parse itself has no limit; the CLI passes raw argv.
const MaxInputLen = 1024

// Validate performs cheap boundary checks before Parse: length and
// character set. It does not guarantee the string parses.
func Validate(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("equation is empty")
	}
	if len(s) > MaxInputLen {
		return fmt.Errorf("equation exceeds %d bytes", MaxInputLen)
	}
	for i, r := range s {
		if !isAllowed(r) {
			return fmt.Errorf("illegal character %q at offset %d", r, i)
		}
	}
	return nil
}

func isAllowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == 'X' || r == '+' || r == '-' || r == '*' || r == '^' || r == '.' || r == '=':
		return true
	case r == ' ' || r == '\t':
		return true
	}
	return false
}
