// Command computor solves one polynomial equation of degree at most 2
// given as its single argument.
package main

import (
	"fmt"
	"os"

	"github.com/reroreo1/computer-v1/internal/equation"
	"github.com/reroreo1/computer-v1/internal/solver"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, `Usage: computor "equation"`)
		os.Exit(1)
	}

	terms, err := equation.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Reduced form: %s\n", terms.ReducedForm())

	sol := solver.Solve(terms)
	fmt.Printf("Polynomial degree: %d\n", sol.Degree)
	fmt.Println(sol.Message())
}
