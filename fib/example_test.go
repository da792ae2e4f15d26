package fib_test

import (
	"fmt"

	"github.com/traefik/fibfixture/fib"
)

func ExampleFib() {
	for n := 0; n <= 5; n++ {
		fmt.Print(fib.Fib(n), " ")
	}
	fmt.Println()

	// Output:
	// 1 1 2 3 5 8
}
