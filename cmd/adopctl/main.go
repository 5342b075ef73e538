// adopctl is the command-line client for the Adopción Responsable
// pet-adoption platform.
package main

import (
	"os"

	"github.com/facundocornejo/adopcionResposanble/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Run())
}
