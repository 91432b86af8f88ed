// Package mathx holds trivial arithmetic helpers.
package mathx

func Add(a, b int) int { return a + b }

func Subtract(a, b int) int { return a - b }
