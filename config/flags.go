package config

import (
	"flag"
	"os"

	"github.com/takaishi/rgnav/preview"
)

// Config holds application configuration
type Config struct {
	Formatter string
}

// ParseFlags parses command line flags and returns configuration
func ParseFlags() (*Config, error) {
	formatterFlag := flag.String("formatter", "", "Formatter command for previews (default: bat or batcat)")
	flag.Parse()

	cfg := &Config{}

	// Determine formatter
	if *formatterFlag != "" {
		cfg.Formatter = *formatterFlag
	} else if envFormatter := getEnvFormatter(); envFormatter != "" {
		cfg.Formatter = envFormatter
	} else {
		// Auto-detect
		bin, err := preview.DetectFormatter()
		if err != nil {
			return nil, err
		}
		cfg.Formatter = bin
	}

	return cfg, nil
}

// getEnvFormatter gets the formatter from the RGNAV_FORMATTER environment variable
func getEnvFormatter() string {
	return os.Getenv("RGNAV_FORMATTER")
}
