// Command graphley issues queries and bulk quad writes against a
// Cayley-compatible graph database from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
