package bst_test

import (
	"fmt"

	"github.com/katalvlaran/pathtree/bst"
)

// ExampleTree shows duplicate handling: both 3s are stored, Remove drops one.
func ExampleTree() {
	t := bst.New()
	for _, v := range []float64{3, 1, 2, 3} {
		t.Add(v)
	}
	fmt.Println(t.Traverse(), t.Count(3))

	t.Remove(3)
	fmt.Println(t.Traverse(), t.Count(3))

	for v := range t.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// [1 2 3 3] 2
	// [1 2 3] 1
	// 1 2 3
}
