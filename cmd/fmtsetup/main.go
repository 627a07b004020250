package main

import (
	"github.com/DevSymphony/fmtsetup/internal/cmd"

	// Bootstrap: register all formatters
	_ "github.com/DevSymphony/fmtsetup/internal/bootstrap"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	cmd.Execute()
}
