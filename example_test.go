package unfold_test

import (
	"fmt"

	"github.com/tmr232/unfold"
)

func ExampleNew() {
	countdown := unfold.New(3, func(n *int) (int, string, bool) {
		if *n == 0 {
			return 0, "", false
		}
		return *n - 1, fmt.Sprint(*n), true
	})
	for countdown.Next() {
		fmt.Println(countdown.Value())
	}
	// Output:
	// 3
	// 2
	// 1
}

func ExampleUnfold_All() {
	odd := unfold.Iterate(1, func(x int) int { return x + 2 })
	fmt.Println(unfold.Sum(unfold.Take(odd.All(), 4)))
	// Output: 16
}
