package solver

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/reroreo1/computer-v1/internal/equation"
)

func residual(a, b, c, x float64) float64 {
	return math.Abs(a*x*x + b*x + c)
}

func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	nonZero := gen.Float64Range(-100, 100).SuchThat(func(v float64) bool {
		return math.Abs(v) > 1e-3
	})
	coeff := gen.Float64Range(-100, 100)

	properties.Property("discriminant sign determines the branch", prop.ForAll(
		func(a, b, c float64) bool {
			sol := Solve(equation.TermMap{2: a, 1: b, 0: c})
			disc := b*b - 4*a*c
			switch {
			case disc < 0:
				return sol.Kind == TwoComplexRoots
			case disc == 0:
				return sol.Kind == RepeatedRoot
			default:
				return sol.Kind == TwoRealRoots
			}
		},
		nonZero, coeff, coeff,
	))

	properties.Property("real roots satisfy the equation", prop.ForAll(
		func(a, b, c float64) bool {
			sol := Solve(equation.TermMap{2: a, 1: b, 0: c})
			if sol.Kind != TwoRealRoots {
				return true
			}
			tol := 1e-6 * (math.Abs(a)*(sol.X1*sol.X1+sol.X2*sol.X2) + math.Abs(b)*(math.Abs(sol.X1)+math.Abs(sol.X2)) + math.Abs(c) + 1)
			return residual(a, b, c, sol.X1) <= tol && residual(a, b, c, sol.X2) <= tol
		},
		nonZero, coeff, coeff,
	))

	properties.Property("linear root satisfies the equation", prop.ForAll(
		func(b, c float64) bool {
			sol := Solve(equation.TermMap{1: b, 0: c})
			if sol.Kind != OneRoot {
				return true
			}
			return math.Abs(b*sol.X1+c) <= 1e-9*(math.Abs(b)*math.Abs(sol.X1)+math.Abs(c)+1)
		},
		nonZero, coeff,
	))

	properties.Property("degree reported equals highest nonzero exponent", prop.ForAll(
		func(a, b, c float64) bool {
			terms := equation.TermMap{2: a, 1: b, 0: c}
			return Solve(terms).Degree == terms.Degree()
		},
		coeff, coeff, coeff,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
