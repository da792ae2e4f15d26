// Package fib computes terms of a Fibonacci-like sequence.
//
// The sequence starts with two ones: f(0) = 1 and f(1) = 1, so it is the
// textbook sequence shifted by one position. Terms are computed by naive
// double recursion, without memoization.
package fib

// Fib returns the n-th term of the sequence.
//
// The call count grows exponentially with n. The result wraps around on
// int overflow. n must not be negative: a negative n never reaches a base
// case and recurses until the goroutine stack is exhausted.
func Fib(n int) int {
	if n == 0 || n == 1 {
		return 1
	}
	return Fib(n-1) + Fib(n-2)
}
