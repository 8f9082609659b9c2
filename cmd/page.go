package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/cdp"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/dom"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
	"github.com/xkilldash9x/scalpel-geometry/internal/config"
)

// page is a loaded document a command measures.
type page interface {
	Host() geometry.Host
	EnterFrame(selector string) error
	// Err reports a failure the host absorbed while the command ran.
	Err() error
	Close() error
}

// pageOpener loads a source into a page.
type pageOpener interface {
	Open(ctx context.Context, cfg *config.Config, source string, logger *zap.Logger) (page, error)
}

// frameSeparator splits a --frame value into nested frame selectors.
const frameSeparator = ">>"

// openPage loads source and enters the requested frames.
func openPage(ctx context.Context, inv *invocation, source string) (page, error) {
	p, err := inv.opener.Open(ctx, inv.cfg, source, inv.logger)
	if err != nil {
		return nil, err
	}
	if inv.frame == "" {
		return p, nil
	}
	for _, sel := range strings.Split(inv.frame, frameSeparator) {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		if err := p.EnterFrame(sel); err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("failed to enter frame: %w", err)
		}
	}
	return p, nil
}

// -- Browser Pages --

type browserOpener struct{}

func (browserOpener) Open(ctx context.Context, cfg *config.Config, source string, logger *zap.Logger) (page, error) {
	target, err := sourceURL(source)
	if err != nil {
		return nil, err
	}
	browser, err := cdp.Launch(ctx, cfg.Browser(), logger)
	if err != nil {
		return nil, err
	}
	host, err := browser.Open(target)
	if err != nil {
		browser.Close()
		return nil, err
	}
	return &browserPage{browser: browser, host: host}, nil
}

// sourceURL accepts URLs as-is and turns file paths into file:// URLs.
func sourceURL(source string) (string, error) {
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return source, nil
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", source, err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

type browserPage struct {
	browser *cdp.Browser
	host    *cdp.Host
}

func (p *browserPage) Host() geometry.Host              { return p.host }
func (p *browserPage) EnterFrame(selector string) error { return p.host.EnterFrame(selector) }
func (p *browserPage) Err() error                       { return p.host.Err() }

func (p *browserPage) Close() error {
	defer p.browser.Close()
	return p.host.Close()
}

// -- Static Pages --

type staticOpener struct{}

func (staticOpener) Open(_ context.Context, cfg *config.Config, source string, logger *zap.Logger) (page, error) {
	var r io.Reader = os.Stdin
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer f.Close()
		r = f
	}

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	vp := cfg.Browser().Viewport
	win := dom.NewWindow(doc, float64(vp.Width), float64(vp.Height))
	frames, err := dom.LoadFrames(win)
	if err != nil {
		return nil, fmt.Errorf("failed to load frames of %s: %w", source, err)
	}
	logger.Debug("Static page loaded.", zap.String("source", source), zap.Int("frames", frames))
	return &staticPage{env: dom.NewEnvironment(win, logger)}, nil
}

type staticPage struct {
	env *dom.Environment
}

func (p *staticPage) Host() geometry.Host              { return p.env }
func (p *staticPage) EnterFrame(selector string) error { return p.env.EnterFrame(selector) }
func (p *staticPage) Err() error                       { return nil }
func (p *staticPage) Close() error                     { return nil }
