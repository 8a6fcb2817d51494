// Command mstrace builds, verifies and serves step-by-step Kruskal traces.
package main

import (
	"os"

	"github.com/katalvlaran/mstrace/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
