package equation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SyntaxError reports the first point where the input stops matching
// the term grammar. Offset is an index into the equation with
// whitespace removed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed equation at offset %d: %s", e.Offset, e.Msg)
}

// Parse converts an equation string into its normalized TermMap.
//
// Whitespace is insignificant everywhere. The string must contain
// exactly one '='. Each side is a signed sequence of terms; a term is
// "coef", "coef * X^exp", or any natural contraction of that form
// ("X", "-X^2", "4*X"). Unlike a findall-style matcher, any residual
// character that does not belong to a term is an error.
func Parse(input string) (TermMap, error) {
	s := stripSpace(input)
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return nil, &SyntaxError{Offset: len(s), Msg: "missing '=' separator"}
	}
	if next := strings.IndexByte(s[eq+1:], '='); next >= 0 {
		return nil, &SyntaxError{Offset: eq + 1 + next, Msg: "more than one '=' separator"}
	}

	left, err := scanSide(s[:eq], 0)
	if err != nil {
		return nil, err
	}
	right, err := scanSide(s[eq+1:], eq+1)
	if err != nil {
		return nil, err
	}

	// Move the right-hand side to the left: P(X) = 0.
	for exp, coeff := range right {
		left[exp] -= coeff
	}
	return left, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// scanSide folds one side of the equation into a TermMap, summing
// coefficients that share an exponent. base offsets reported error
// positions into the full string.
func scanSide(s string, base int) (TermMap, error) {
	if s == "" {
		return nil, &SyntaxError{Offset: base, Msg: "empty side"}
	}
	terms := make(TermMap)
	pos := 0
	for pos < len(s) {
		sign := 1.0
		switch s[pos] {
		case '+':
			pos++
		case '-':
			sign = -1
			pos++
		}
		coeff, exp, n, err := scanTerm(s[pos:], base+pos)
		if err != nil {
			return nil, err
		}
		terms[exp] += sign * coeff
		pos += n
		if pos < len(s) && s[pos] != '+' && s[pos] != '-' {
			return nil, &SyntaxError{Offset: base + pos, Msg: fmt.Sprintf("unexpected character %q", s[pos])}
		}
	}
	return terms, nil
}

// scanTerm reads one term (sign already consumed) and returns its
// coefficient, exponent and consumed length.
func scanTerm(s string, off int) (coeff float64, exp int, n int, err error) {
	coeff = 1
	i := 0

	j := scanNumber(s, i)
	haveCoeff := j > i
	if haveCoeff {
		coeff, err = strconv.ParseFloat(s[i:j], 64)
		if err != nil {
			return 0, 0, 0, &SyntaxError{Offset: off + i, Msg: "invalid coefficient " + s[i:j]}
		}
		i = j
	}

	if haveCoeff && i < len(s) && s[i] == '*' {
		i++
		if i >= len(s) || s[i] != 'X' {
			return 0, 0, 0, &SyntaxError{Offset: off + i, Msg: "expected X after '*'"}
		}
	}

	if i < len(s) && s[i] == 'X' {
		i++
		exp = 1
		if i < len(s) && s[i] == '^' {
			i++
			k := i
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k == i {
				return 0, 0, 0, &SyntaxError{Offset: off + i, Msg: "expected exponent after '^'"}
			}
			exp, err = strconv.Atoi(s[i:k])
			if err != nil {
				return 0, 0, 0, &SyntaxError{Offset: off + i, Msg: "invalid exponent " + s[i:k]}
			}
			i = k
		}
	} else if !haveCoeff {
		msg := "expected term"
		if len(s) > 0 {
			msg = fmt.Sprintf("expected term, found %q", s[0])
		}
		return 0, 0, 0, &SyntaxError{Offset: off, Msg: msg}
	}

	return coeff, exp, i, nil
}

// scanNumber advances past an unsigned decimal number: digits with an
// optional fraction part. Returns i unchanged when none is present.
func scanNumber(s string, i int) int {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i {
		return i
	}
	if j < len(s) && s[j] == '.' {
		k := j + 1
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k == j+1 {
			return j // trailing '.' belongs to no term; caller errors on it
		}
		j = k
	}
	return j
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
