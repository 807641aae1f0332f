package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Logging
	LogMode    string
	LogVerbose bool

	// Assembly
	StrictRoot      bool
	SuggestDistance int

	// CLI
	Workers int
}

func Load() Config {
	return Config{
		// Logging
		LogMode:    getenv("AICC_LOG_MODE", "development"),
		LogVerbose: getenvBool("AICC_LOG_VERBOSE", false),

		// Assembly
		StrictRoot:      getenvBool("AICC_STRICT_ROOT", false),
		SuggestDistance: getenvInt("AICC_SUGGEST_DISTANCE", 2),

		// CLI
		Workers: getenvInt("AICC_WORKERS", 4),
	}
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
