// Command tuiotime inspects the clock and manages session-relative time.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/tuiotime/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
