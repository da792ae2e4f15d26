// Command fib prints the third term of the fixture sequence.
package main

import (
	"fmt"

	"github.com/traefik/fibfixture/fib"
)

func main() {
	r := fib.Fib(3)
	fmt.Println(r)
}
