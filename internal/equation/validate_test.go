package equation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", "5 * X^0 + 4 * X^1 = 1 * X^0", false},
		{"tabs allowed", "2\t*\tX^1 = 0", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"prose", "the answer = 42", true},
		{"lowercase x", "2 * x^1 = 0", true},
		{"too long", strings.Repeat("1", MaxInputLen+1) + "=0", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
