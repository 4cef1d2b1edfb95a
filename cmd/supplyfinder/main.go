// Command supplyfinder runs one role of the supply finder: the finder
// itself, the reference registry, a reference provider, or the lookup
// client.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
