package main

import (
	"github.com/kartka-labs/kartka-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
