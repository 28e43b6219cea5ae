package main

import "github.com/slatedeck/GreenLight-Intelligence/internal/interfaces/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
