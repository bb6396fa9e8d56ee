package main

import "beeftest"

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

var _ = beeftest.Test("gcd", func(t *beeftest.T) {
	t.Cond(gcd(12, 18) == 6)
	t.Cond(gcd(7, 13) == 1)
	t.Cond(gcd(0, 5) == 5)
	t.Cond(gcd(-4, 6) == 2)
})

var _ = beeftest.Test("lcm", func(t *beeftest.T) {
	t.Assert(lcm(0, 3) == 0)
	t.Cond(lcm(4, 6) == 12)
	t.Cond(lcm(21, 6) == 42)
})

// Same name as a test in strings.go: selecting either file runs both.
var _ = beeftest.Test("zero values", func(t *beeftest.T) {
	var n int
	t.Cond(n == 0)
	t.Cond(gcd(n, n) == 0)
})
