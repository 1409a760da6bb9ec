package config

import (
	"flag"

	"github.com/dmitrijs2005/ufood/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     base URL of the UFood API
//	-t duration   per-request timeout, e.g. 5s
//	-d string     SQLite database file
//	-l string     log level
//	-r float      outgoing requests per second, 0 disables the limit
//
// Note: args are filtered with flagx.FilterArgs first, so flags owned by
// other layers (-c, -config) do not break parsing.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the UFood API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "max requests per second (0 = unlimited)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
