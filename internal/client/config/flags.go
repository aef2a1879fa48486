package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/auditkeeper/internal/flagx"
)

// parseFlags populates selected CLI Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   base URL of the backend HTTP API (e.g., "http://localhost:8000")
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerAddr, "s", config.ServerAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
