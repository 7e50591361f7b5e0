// Command querysim drives compiled queries over a synthetic world, for profiling and
// for trying scheduler configuration files.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stderr))
}

// runMain executes the command line and returns the process exit code. Errors are
// silenced by cobra, so they are reported here.
func runMain(args []string, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "querysim: %v\n", err)
		return 1
	}
	return 0
}
