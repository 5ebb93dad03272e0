// Command folio serves a folio site, previews its galleries in the terminal
// and scaffolds new sites.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
