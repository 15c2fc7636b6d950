// SPDX-License-Identifier: MIT
// Package tsp_test provides runnable, deterministic examples of driving the
// solvers step by step.
package tsp_test

import (
	"fmt"

	"github.com/rijkvp/tsp/matrix"
	"github.com/rijkvp/tsp/tsp"
)

// ExampleBruteForce enumerates every tour of a 10×10 square.
func ExampleBruteForce() {
	bf, err := tsp.NewBruteForce([]matrix.City{
		matrix.Pt(0, 0), matrix.Pt(10, 0), matrix.Pt(10, 10), matrix.Pt(0, 10),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !bf.Step() {
	}

	st := bf.State()
	tour, _ := tsp.NormalizeTour(st.Path)
	fmt.Printf("%.4f %v %s\n", st.Length, tour, st.Status)
	// Output: 40.0000 [0 1 2 3] P: 24 / 24
}

// ExampleNextPermutation lists the permutations of three cities in the
// order the enumerating solver visits them.
func ExampleNextPermutation() {
	perm := []int{0, 1, 2}
	fmt.Println(perm)
	for tsp.NextPermutation(perm) {
		fmt.Println(perm)
	}
	// Output:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}

// ExampleNew selects a solver by name and runs it headlessly.
func ExampleNew() {
	kind, err := tsp.ParseKind("an")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	alg, err := tsp.New(kind, []matrix.City{matrix.Pt(0, 0), matrix.Pt(3, 4)}, tsp.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !alg.Step() {
	}
	fmt.Println(alg.Kind(), alg.State().Length)
	// Output: annealing 10
}
