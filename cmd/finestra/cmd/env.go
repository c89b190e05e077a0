package cmd

import (
	"fmt"
	"os"
	"strings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "env",
		Short: "List environment variables and arguments",
		Long: `List the environment variables and command-line arguments the
finestra tool was started with. Useful to check what a build script or IDE
passes along.`,
		Usage: "finestra env [ARGS...]",
		Run:   runEnv,
	})
}

func runEnv(args []string) error {
	env := os.Environ()
	fmt.Fprintf(stdout, "%d environment variable(s) set:\n", len(env))
	for _, kv := range env {
		name, value, _ := strings.Cut(kv, "=")
		fmt.Fprintf(stdout, "    - %s: %q\n", name, value)
	}

	fmt.Fprintf(stdout, "%d argument(s) set:\n", len(args))
	for _, arg := range args {
		fmt.Fprintf(stdout, "    - %q\n", arg)
	}
	return nil
}
