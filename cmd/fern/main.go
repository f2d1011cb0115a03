// Command fern renders the sample scenes headlessly or in a terminal.
package main

import (
	"os"

	"github.com/go-fern/fern/cmd/fern/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		cmd.ReportError(err)
		os.Exit(1)
	}
}
