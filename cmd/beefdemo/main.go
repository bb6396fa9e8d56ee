// Command beefdemo runs the tests declared next to its own code.
//
//	beefdemo                  run everything
//	beefdemo -v 3 gcd         run one test, print every assertion
//	beefdemo -f strings.go    run the tests declared in strings.go
package main

import "beeftest"

func main() {
	beeftest.Main()
}
