// Command clockface shows a live analog clock in a desktop window, or prints
// the geometry of a single clock frame as YAML.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "clockface: %v\n", err)
		os.Exit(1)
	}
}
