package app

import "time"

// Defaults filled in by ApplyDefaults once flags, env and the config file
// have been merged.
const (
	DefaultFormat      = "text"
	DefaultCacheDir    = ".sermonnotes-cache"
	DefaultPDFPageSize = "A4"
)

// Config holds runtime configuration for the application.
type Config struct {
	InputPath string
	// OutputPath is where the rendering goes. Empty or "-" means stdout
	// unless OutputDir is set.
	OutputPath string
	// OutputDir, when set and OutputPath is empty, receives a file named
	// after the sermon title.
	OutputDir string
	Format    string

	// Rendering
	PDFPageSize string
	TermWidth   int
	// Footer appends a source footer to text output.
	Footer bool

	// Scanning
	// RequireHeader turns a missing header into a failure instead of a warning.
	RequireHeader bool

	// Cache
	CacheDir         string
	CacheMaxAge      time.Duration
	CacheClear       bool
	CacheStrictPerms bool

	Verbose bool
}

// ApplyDefaults fills fields that flags, env and the config file all left
// empty.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.PDFPageSize == "" {
		cfg.PDFPageSize = DefaultPDFPageSize
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
}
