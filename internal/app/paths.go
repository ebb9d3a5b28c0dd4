package app

import (
	"path/filepath"
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// deriveOutputPath names the output after the sermon title plus a short
// digest prefix, so two renderings of the same file land on the same path.
func deriveOutputPath(dir, title, digest, ext string) string {
	short := digest
	if len(short) > 12 {
		short = short[:12]
	}
	name := slugify(title)
	if short != "" {
		name += "-" + short
	}
	return filepath.Join(dir, name+ext)
}

func slugify(s string) string {
	s = nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "sermon"
	}
	return s
}

// isStdout reports whether cfg sends output to standard output.
func isStdout(cfg Config) bool {
	out := strings.TrimSpace(cfg.OutputPath)
	return (out == "" || out == "-") && strings.TrimSpace(cfg.OutputDir) == ""
}
