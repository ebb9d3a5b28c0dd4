// Package app wires loading, scanning and rendering into one run.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/sermonnotes/internal/cache"
	"github.com/hyperifyio/sermonnotes/internal/lines"
	"github.com/hyperifyio/sermonnotes/internal/notes"
	"github.com/hyperifyio/sermonnotes/internal/render"
	"github.com/hyperifyio/sermonnotes/internal/scan"
)

type App struct {
	cfg      Config
	renderer render.Renderer
	cache    *cache.ArtifactCache
	stdout   io.Writer
}

// New validates cfg and prepares the renderer and artifact cache.
func New(ctx context.Context, cfg Config) (*App, error) {
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = DefaultFormat
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, stdout: os.Stdout}

	opts := render.Options{PDFPageSize: cfg.PDFPageSize, TermWidth: cfg.TermWidth}
	if isStdout(cfg) {
		opts.TermOutput = os.Stdout
	}
	r, err := render.ForFormat(cfg.Format, opts)
	if err != nil {
		return nil, err
	}
	a.renderer = r

	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				log.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("cache clear failed")
			}
		}
		if cfg.CacheMaxAge > 0 {
			n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
			if err != nil {
				log.Warn().Err(err).Msg("cache purge failed")
			} else if n > 0 {
				log.Debug().Int("removed", n).Msg("purged stale artifacts")
			}
		}
		a.cache = &cache.ArtifactCache{Dir: cfg.CacheDir, StrictPerms: cfg.CacheStrictPerms}
	}
	return a, nil
}

// Run loads the notes, extracts the header and comparisons, and writes the
// rendering.
func (a *App) Run(ctx context.Context) error {
	doc, err := notes.Load(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	log.Debug().Str("path", doc.Path).Int("lines", len(doc.Lines)).Msg("loaded notes")
	if err := ctx.Err(); err != nil {
		return err
	}

	rd, err := Extract(doc, a.cfg.RequireHeader)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := a.renderBytes(ctx, rd)
	if err != nil {
		return err
	}
	return a.write(rd, data)
}

// Extract scans the lines of doc: the header first, then comparisons over
// whatever the header left in the buffer. A missing header is only logged
// unless requireHeader is set.
func Extract(doc notes.Document, requireHeader bool) (render.Document, error) {
	buf := lines.New(doc.Lines)
	out := render.Document{Source: doc.Path, Digest: doc.Digest}

	h, err := scan.ExtractHeader(buf)
	switch {
	case err == nil:
		out.Header = &h
	case errors.Is(err, scan.ErrHeaderNotFound) && !requireHeader:
		log.Warn().Err(err).Str("path", doc.Path).Msg("no header found; continuing")
	default:
		return render.Document{}, fmt.Errorf("extract header: %w", err)
	}

	comps, err := scan.ExtractComparisons(buf)
	if err != nil {
		return render.Document{}, fmt.Errorf("extract comparisons: %w", err)
	}
	out.Comparisons = comps
	log.Debug().Bool("header", out.Header != nil).Int("comparisons", len(comps)).Int("remaining", buf.Len()).Msg("extracted tokens")
	return out, nil
}

func (a *App) renderBytes(ctx context.Context, rd render.Document) ([]byte, error) {
	// Terminal output depends on the attached terminal, so it is not cached.
	useCache := a.cache != nil && a.cfg.Format != "term" && rd.Digest != ""
	key := cache.KeyFrom(a.cacheFormatKey(rd), rd.Digest)
	if useCache {
		if b, ok, err := a.cache.Get(ctx, key); err != nil {
			log.Warn().Err(err).Msg("cache read failed")
		} else if ok {
			log.Debug().Str("format", a.cfg.Format).Msg("artifact cache hit")
			return b, nil
		}
	}

	var buf bytes.Buffer
	if err := a.renderer.Render(&buf, rd); err != nil {
		return nil, fmt.Errorf("render %s: %w", a.cfg.Format, err)
	}
	out := buf.Bytes()
	if a.cfg.Footer && a.cfg.Format == "text" {
		out = []byte(appendSourceFooter(buf.String(), rd.Source, rd.Digest, rd.Header != nil, len(rd.Comparisons)))
	}

	if useCache {
		if err := a.cache.Save(ctx, key, out); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
	}
	return out, nil
}

// cacheFormatKey covers every setting that changes the rendered bytes.
func (a *App) cacheFormatKey(rd render.Document) string {
	return fmt.Sprintf("%s|page=%s|width=%d|footer=%t|source=%s",
		a.cfg.Format, a.cfg.PDFPageSize, a.cfg.TermWidth, a.cfg.Footer, rd.Source)
}

func (a *App) write(rd render.Document, data []byte) error {
	if isStdout(a.cfg) {
		_, err := a.stdout.Write(data)
		return err
	}
	out := strings.TrimSpace(a.cfg.OutputPath)
	if out == "" || out == "-" {
		out = deriveOutputPath(a.cfg.OutputDir, rd.Title(), rd.Digest, a.renderer.Extension())
	}
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", out).Str("format", a.cfg.Format).Msg("wrote output")
	return nil
}
