package solver

import "errors"

// ErrUndefinedSqrt is returned for negative input. Solve always
// passes the discriminant's absolute value, so it never sees this.
var ErrUndefinedSqrt = errors.New("square root undefined for negative input")

// sqrtIterations is enough for the Newton step seeded at the input to
// converge to full float64 precision across practical magnitudes.
const sqrtIterations = 20

// Sqrt approximates the square root of x with a fixed-iteration
// Newton-Raphson refinement seeded at x itself.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrUndefinedSqrt
	}
	if x == 0 {
		// A zero seed would divide by itself on the first step.
		return 0, nil
	}
	r := x
	for i := 0; i < sqrtIterations; i++ {
		r = 0.5 * (r + x/r)
	}
	return r, nil
}
