// Command finestra inspects finestra projects and runs the demo
// applications on the headless backend.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/finestra/cmd/finestra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
