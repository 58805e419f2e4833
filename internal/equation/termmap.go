// Package equation parses polynomial equations of the form
// "c * X^e ... = c * X^e ..." into a normalized coefficient map.
package equation

import (
	"fmt"
	"sort"
	"strings"
)

// TermMap maps exponent to coefficient for the normalized polynomial
// P(X) = 0 (right-hand side already subtracted).
type TermMap map[int]float64

// Degree returns the greatest exponent with a nonzero coefficient,
// or 0 when no nonzero term exists.
func (t TermMap) Degree() int {
	deg := 0
	for exp, coeff := range t {
		if coeff != 0 && exp > deg {
			deg = exp
		}
	}
	return deg
}

// Coeff returns the coefficient for exp, 0 when absent.
func (t TermMap) Coeff(exp int) float64 {
	return t[exp]
}

// Exponents returns all exponents in descending order.
func (t TermMap) Exponents() []int {
	exps := make([]int, 0, len(t))
	for exp := range t {
		exps = append(exps, exp)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(exps)))
	return exps
}

// ReducedForm renders the canonical single-sided form, descending
// exponents, zero coefficients omitted. An equation with no nonzero
// terms renders as "0 = 0".
func (t TermMap) ReducedForm() string {
	var parts []string
	for _, exp := range t.Exponents() {
		coeff := t[exp]
		if coeff == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%+g * X^%d", coeff, exp))
	}
	if len(parts) == 0 {
		return "0 = 0"
	}
	return strings.Join(parts, " ") + " = 0"
}
