// internal/browser/cdp/browser.go
package cdp

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/internal/config"
)

// ExecAllocatorOptions builds the Chrome launch options for a browser configuration.
func ExecAllocatorOptions(cfg config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		// Sandboxing fails on hardened hosts and inside containers.
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	if cfg.Headless {
		opts = append(opts, chromedp.Headless)
	} else {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	if cfg.DisableGPU {
		opts = append(opts, chromedp.DisableGPU)
	}
	if cfg.Viewport.Width > 0 && cfg.Viewport.Height > 0 {
		opts = append(opts, chromedp.WindowSize(cfg.Viewport.Width, cfg.Viewport.Height))
	}

	for _, arg := range cfg.Args {
		if name, value, ok := parseFlag(arg); ok {
			opts = append(opts, chromedp.Flag(name, value))
		}
	}
	return opts
}

// parseFlag turns "--name", "name" or "--name=value" into a chromedp flag. Boolean flags
// carry true.
func parseFlag(arg string) (string, interface{}, bool) {
	arg = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(arg), "-"))
	if arg == "" {
		return "", nil, false
	}
	name, value, hasValue := strings.Cut(arg, "=")
	if name == "" {
		return "", nil, false
	}
	if !hasValue {
		return name, true, true
	}
	return name, value, true
}

// Browser owns one Chrome process. Pages are opened as separate tabs.
type Browser struct {
	cfg    config.BrowserConfig
	logger *zap.Logger

	ctx         context.Context
	cancelAlloc context.CancelFunc
	cancel      context.CancelFunc
}

// Launch starts Chrome with the configured options.
func Launch(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*Browser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("browser")

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, ExecAllocatorOptions(cfg)...)
	browserCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Sugar().Debugf))

	// The first Run on a fresh context starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	logger.Debug("Browser started.", zap.Bool("headless", cfg.Headless))

	return &Browser{cfg: cfg, logger: logger, ctx: browserCtx, cancelAlloc: cancelAlloc, cancel: cancel}, nil
}

// Open navigates a new tab to url and returns a host over it. Closing the host closes
// the tab.
func (b *Browser) Open(url string) (*Host, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.ctx)
	// Create the target before attaching a timeout; cancelling the context of the first
	// Run would close the tab.
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}

	navCtx, cancelNav := context.WithTimeout(tabCtx, b.cfg.NavigationTimeout)
	defer cancelNav()

	actions := []chromedp.Action{
		chromedp.EmulateViewport(int64(b.cfg.Viewport.Width), int64(b.cfg.Viewport.Height)),
		chromedp.Navigate(url),
	}
	if b.cfg.PostLoadWait > 0 {
		actions = append(actions, chromedp.Sleep(b.cfg.PostLoadWait))
	}
	if err := chromedp.Run(navCtx, actions...); err != nil {
		cancelTab()
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}
	b.logger.Debug("Page loaded.", zap.String("url", url))

	host := NewHost(tabCtx, b.cfg.CallTimeout, b.logger)
	host.onClose = cancelTab
	return host, nil
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancel()
	b.cancelAlloc()
}
