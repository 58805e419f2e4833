// Package solver computes the solution set of a normalized polynomial
// of degree at most 2.
package solver

import (
	"fmt"
	"math"

	"github.com/reroreo1/computer-v1/internal/equation"
)

// Kind tags the outcome variant of a solve.
type Kind string

const (
	// NoSolution: nonzero constant equals zero.
	NoSolution Kind = "no_solution"
	// AllReals: 0 = 0, every real number is a solution.
	AllReals Kind = "all_reals"
	// OneRoot: degree 1, unique root -c/b.
	OneRoot Kind = "one_root"
	// RepeatedRoot: degree 2, zero discriminant.
	RepeatedRoot Kind = "repeated_root"
	// TwoRealRoots: degree 2, positive discriminant.
	TwoRealRoots Kind = "two_real_roots"
	// TwoComplexRoots: degree 2, negative discriminant.
	TwoComplexRoots Kind = "two_complex_roots"
	// DegreeTooHigh: degree above 2, not solved.
	DegreeTooHigh Kind = "degree_too_high"
)

// Solution is the tagged result of Solve. Which numeric fields are
// meaningful depends on Kind: X1 for OneRoot and RepeatedRoot, X1/X2
// for TwoRealRoots, Real/Imag for TwoComplexRoots.
type Solution struct {
	Kind         Kind    `json:"kind"`
	Degree       int     `json:"degree"`
	Discriminant float64 `json:"discriminant"`
	X1           float64 `json:"x1"`
	X2           float64 `json:"x2"`
	Real         float64 `json:"real"`
	Imag         float64 `json:"imag"`
}

// Solve determines the degree of the normalized polynomial and
// applies the closed-form policy for degrees 0 through 2. It is pure
// and never fails; unsupported degrees are reported as a variant.
func Solve(terms equation.TermMap) Solution {
	degree := terms.Degree()
	if degree > 2 {
		return Solution{Kind: DegreeTooHigh, Degree: degree}
	}

	a := terms.Coeff(2)
	b := terms.Coeff(1)
	c := terms.Coeff(0)

	switch degree {
	case 2:
		return solveQuadratic(a, b, c)
	case 1:
		return solveLinear(b, c)
	default:
		return solveConstant(c)
	}
}

func solveConstant(c float64) Solution {
	if c == 0 {
		return Solution{Kind: AllReals, Degree: 0}
	}
	return Solution{Kind: NoSolution, Degree: 0}
}

func solveLinear(b, c float64) Solution {
	if b == 0 {
		// Degenerate: falls back to the constant policy.
		return solveConstant(c)
	}
	return Solution{Kind: OneRoot, Degree: 1, X1: -c / b}
}

func solveQuadratic(a, b, c float64) Solution {
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		im, _ := Sqrt(math.Abs(disc))
		return Solution{
			Kind:         TwoComplexRoots,
			Degree:       2,
			Discriminant: disc,
			Real:         -b / (2 * a),
			Imag:         im / (2 * a),
		}
	case disc == 0:
		return Solution{
			Kind:         RepeatedRoot,
			Degree:       2,
			Discriminant: 0,
			X1:           -b / (2 * a),
		}
	default:
		root, _ := Sqrt(disc)
		return Solution{
			Kind:         TwoRealRoots,
			Degree:       2,
			Discriminant: disc,
			X1:           (-b + root) / (2 * a),
			X2:           (-b - root) / (2 * a),
		}
	}
}

// Message renders the human-readable outcome used by the CLI and the
// API. Numeric formatting follows %g.
func (s Solution) Message() string {
	switch s.Kind {
	case NoSolution:
		return "There is no solution."
	case AllReals:
		return "Every real number is a solution."
	case OneRoot:
		return fmt.Sprintf("The solution is:\n%g", s.X1)
	case RepeatedRoot:
		return fmt.Sprintf("The discriminant is zero. The solution is:\n%g", s.X1)
	case TwoRealRoots:
		return fmt.Sprintf("The discriminant is strictly positive: %g\nThe two solutions are:\n%g\n%g",
			s.Discriminant, s.X1, s.X2)
	case TwoComplexRoots:
		return fmt.Sprintf("The equation has two complex roots:\nx1 = %g + %gi\nx2 = %g - %gi",
			s.Real, s.Imag, s.Real, s.Imag)
	case DegreeTooHigh:
		return "The polynomial degree is strictly greater than 2, I can't solve."
	}
	return fmt.Sprintf("unknown solution kind %q", s.Kind)
}
