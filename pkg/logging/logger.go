package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Determine if JSON format should be used
	jsonFormat := os.Getenv("BOXNAMES_JSON_LOG") == "1"

	color := hclog.ColorOff
	if f, ok := output.(*os.File); ok && !jsonFormat && isatty.IsTerminal(f.Fd()) {
		color = hclog.AutoColor
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🎮 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		Color:      color,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// Named returns a stderr logger at the environment's log level. Library
// packages use it for their package-level loggers.
func Named(name string) hclog.Logger {
	return NewLogger(name, GetLogLevel(), nil)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("BOXNAMES_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return level
}
