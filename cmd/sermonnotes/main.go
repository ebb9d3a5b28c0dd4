// Command sermonnotes scans a plain-text sermon-note file for its header and
// comparison groups and renders them as text, HTML, PDF, JSON or styled
// terminal output.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/sermonnotes/internal/app"
	"github.com/hyperifyio/sermonnotes/internal/notes"
	"github.com/hyperifyio/sermonnotes/internal/render"
	"github.com/hyperifyio/sermonnotes/internal/scan"
)

// CLI defines the command-line interface for sermonnotes.
type CLI struct {
	Config  string   `name:"config" short:"c" help:"YAML or JSON config file" type:"path"`
	Env     []string `name:"env" help:"Dotenv files to load before reading the environment" default:".env"`
	Verbose bool     `name:"verbose" short:"v" help:"Verbose logging"`

	Render  RenderCmd  `cmd:"" default:"withargs" help:"Render a sermon-note file"`
	Formats FormatsCmd `cmd:"" help:"List output formats"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// RenderCmd renders one notes file.
type RenderCmd struct {
	Input         string        `arg:"" optional:"" help:"Path to the .txt notes file"`
	Output        string        `name:"output" short:"o" help:"Output file path; '-' for stdout"`
	OutputDir     string        `name:"output-dir" help:"Directory for an output file named after the sermon title" type:"path"`
	Format        string        `name:"format" short:"f" help:"Output format (text, html, json, pdf, term); defaults to text"`
	PDFPageSize   string        `name:"pdf-page-size" help:"PDF page size (A4, Letter, Legal); defaults to A4"`
	TermWidth     int           `name:"term-width" help:"Column width for terminal output; 0 uses the default"`
	Footer        bool          `name:"footer" help:"Append a source footer to text output"`
	RequireHeader bool          `name:"require-header" help:"Fail when no header can be found"`
	CacheDir      string        `name:"cache-dir" help:"Artifact cache directory; defaults to .sermonnotes-cache"`
	NoCache       bool          `name:"no-cache" help:"Do not read or write the artifact cache"`
	CacheMaxAge   time.Duration `name:"cache-max-age" help:"Purge cached artifacts older than this; 0 disables"`
	CacheClear    bool          `name:"cache-clear" help:"Clear the cache directory before the run"`
	CacheStrict   bool          `name:"cache-strict-perms" help:"Restrict cache permissions (0700 dirs, 0600 files)"`
}

func (c *RenderCmd) Run(cli *CLI) error {
	cfg, err := buildConfig(cli, c)
	if err != nil {
		return err
	}
	setLogLevel(cfg.Verbose)
	return run(cfg)
}

// FormatsCmd lists the renderers.
type FormatsCmd struct{}

func (c *FormatsCmd) Run() error {
	for _, f := range render.Formats() {
		fmt.Println(f)
	}
	return nil
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("sermonnotes %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
	return nil
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	setLogLevel(false)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sermonnotes"),
		kong.Description("Scan sermon notes into a header and comparison tables"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitCode(err))
	}
}

// buildConfig merges flags, the environment and the config file, in that
// order of precedence. Value flags carry no kong default, so a flag typed at
// its default value still counts as set.
func buildConfig(cli *CLI, c *RenderCmd) (app.Config, error) {
	if err := app.LoadEnvFiles(cli.Env...); err != nil {
		return app.Config{}, fmt.Errorf("load env files: %w", err)
	}
	cfg := app.Config{
		InputPath:        c.Input,
		OutputPath:       c.Output,
		OutputDir:        c.OutputDir,
		Format:           c.Format,
		PDFPageSize:      c.PDFPageSize,
		TermWidth:        c.TermWidth,
		Footer:           c.Footer,
		RequireHeader:    c.RequireHeader,
		CacheDir:         c.CacheDir,
		CacheMaxAge:      c.CacheMaxAge,
		CacheClear:       c.CacheClear,
		CacheStrictPerms: c.CacheStrict,
		Verbose:          cli.Verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	if cli.Config != "" {
		fc, err := app.LoadConfigFile(cli.Config)
		if err != nil {
			return app.Config{}, fmt.Errorf("load config %s: %w", cli.Config, err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)
	if c.NoCache {
		cfg.CacheDir = ""
	}
	return cfg, nil
}

func setLogLevel(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCode maps malformed input to 2 and every other failure to 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, scan.ErrMalformedHeading),
		errors.Is(err, scan.ErrMalformedItem),
		errors.Is(err, scan.ErrHeaderNotFound),
		errors.Is(err, notes.ErrInvalidEncoding):
		return 2
	default:
		return 1
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
