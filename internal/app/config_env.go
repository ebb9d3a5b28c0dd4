package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env. Empty strings and zero
// numbers count as unset, so call it before ApplyDefaults.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	setString := func(dst *string, envKey string) {
		if *dst != "" {
			return
		}
		if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
			*dst = v
		}
	}
	setString(&cfg.InputPath, "SERMON_INPUT")
	setString(&cfg.OutputPath, "SERMON_OUTPUT")
	setString(&cfg.OutputDir, "SERMON_OUTPUT_DIR")
	setString(&cfg.Format, "SERMON_FORMAT")
	setString(&cfg.PDFPageSize, "PDF_PAGE_SIZE")
	setString(&cfg.CacheDir, "CACHE_DIR")

	if cfg.TermWidth == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TERM_WIDTH"))); err == nil && n > 0 {
			cfg.TermWidth = n
		}
	}

	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.RequireHeader, "REQUIRE_HEADER")
	setBool(&cfg.Footer, "SERMON_FOOTER")
	setBool(&cfg.CacheClear, "CACHE_CLEAR")
	setBool(&cfg.CacheStrictPerms, "CACHE_STRICT_PERMS")
}
