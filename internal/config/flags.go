package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. http://10.0.0.5:3000)
//	-request-timeout outbound request timeout (e.g. "15s")
//	-d SQLite session database path
//	-log log file path
//	-highlight-delay keypad highlight duration (e.g. "150ms")
//	-shake-step shake animation step (e.g. "50ms")
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("crew-pass", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address        string
		requestTimeout time.Duration
		databaseDSN    string
		logFile        string
		highlightDelay time.Duration
		shakeStep      time.Duration
		configPath     string
	)

	fs.StringVar(&address, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "SQLite session database path")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.DurationVar(&highlightDelay, "highlight-delay", 0, "Keypad highlight duration (e.g., 150ms)")
	fs.DurationVar(&shakeStep, "shake-step", 0, "Shake animation step (e.g., 50ms)")
	fs.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogFile: logFile},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Keypad: Keypad{
			HighlightDelay: highlightDelay,
			ShakeStep:      shakeStep,
		},
		FilePath: configPath,
	}, nil
}
