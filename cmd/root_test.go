// File: cmd/root_test.go
package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
	"github.com/xkilldash9x/scalpel-geometry/internal/mocks"
)

func TestConfigFile(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)

	t.Run("Values apply", func(t *testing.T) {
		cfg := writeFile(t, "config.yaml", `
browser:
  viewport:
    width: 800
    height: 600
geometry:
  align_with_top: bottom
`)
		report := runReport(t, "scroll", "--static", "--config", cfg, "-s", "//div[@id='far']", page)
		assert.Equal(t, "bottom", report.Scroll.Alignment.AlignWithTop)
		assert.Equal(t, schemas.Point{Left: 250, Top: 440}, report.Scroll.After)
	})

	t.Run("Flags override the file", func(t *testing.T) {
		cfg := writeFile(t, "config.yaml", "geometry:\n  align_with_top: bottom\n")
		report := runReport(t, "scroll", "--static", "--config", cfg, "--viewport", "800x600", "--align", "top", "-s", "//div[@id='far']", page)
		assert.Equal(t, "top", report.Scroll.Alignment.AlignWithTop)
		assert.Equal(t, schemas.Point{Left: 1000, Top: 1000}, report.Scroll.After)
	})

	t.Run("Invalid values", func(t *testing.T) {
		cfg := writeFile(t, "config.yaml", "geometry:\n  align_with_top: sideways\n")
		_, _, err := executeCommand(t, failingOpener{t: t}, "metrics", "--static", "--config", cfg, page)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "align_with_top")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, _, err := executeCommand(t, failingOpener{t: t}, "metrics", "--static", "--config", "/nonexistent/config.yaml", page)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)
	t.Setenv("SCALPEL_GEOMETRY_GEOMETRY_ALIGN_WITH_TOP", "bottom")
	t.Setenv("SCALPEL_GEOMETRY_BROWSER_VIEWPORT_WIDTH", "800")
	t.Setenv("SCALPEL_GEOMETRY_BROWSER_VIEWPORT_HEIGHT", "600")

	report := runReport(t, "scroll", "--static", "-s", "//div[@id='far']", page)
	assert.Equal(t, schemas.Point{Left: 250, Top: 440}, report.Scroll.After)
}

func TestApplyOverrides(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Bool("headless", true, "")
		fs.String("viewport", "", "")
		fs.String("align", "auto", "")
		fs.Bool("only-if-needed", false, "")
		fs.Bool("no-horizontal", false, "")
		return fs
	}

	t.Run("Only changed flags are applied", func(t *testing.T) {
		cfg := new(mocks.MockConfig)
		cfg.On("SetBrowserHeadless", false).Once()
		cfg.On("SetBrowserViewport", 1024, 768).Once()
		cfg.On("SetGeometryAlignWithTop", "top").Once()
		cfg.On("SetGeometryAllowHorizontalScroll", false).Once()

		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--headless=false", "--viewport", "1024x768", "--align", "top", "--no-horizontal"}))
		require.NoError(t, applyOverrides(fs, cfg))

		cfg.AssertExpectations(t)
		cfg.AssertNotCalled(t, "SetGeometryOnlyScrollIfNeeded", false)
		cfg.AssertNotCalled(t, "SetGeometryOnlyScrollIfNeeded", true)
	})

	t.Run("Nothing changed", func(t *testing.T) {
		cfg := new(mocks.MockConfig)
		require.NoError(t, applyOverrides(newFlags(), cfg))
		cfg.AssertExpectations(t)
	})

	t.Run("Missing flags are skipped", func(t *testing.T) {
		cfg := new(mocks.MockConfig)
		require.NoError(t, applyOverrides(pflag.NewFlagSet("empty", pflag.ContinueOnError), cfg))
	})

	t.Run("Invalid viewport", func(t *testing.T) {
		cfg := new(mocks.MockConfig)
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--viewport", "wide"}))
		assert.Error(t, applyOverrides(fs, cfg))
	})
}

func TestParseViewport(t *testing.T) {
	tests := []struct {
		in            string
		width, height int
		wantErr       bool
	}{
		{"800x600", 800, 600, false},
		{" 1920X1080 ", 1920, 1080, false},
		{"800", 0, 0, true},
		{"axb", 0, 0, true},
		{"800x", 0, 0, true},
		{"0x600", 0, 0, true},
		{"-1x600", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseViewport(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.width, w, tt.in)
		assert.Equal(t, tt.height, h, tt.in)
	}
}

func TestSourceURL(t *testing.T) {
	got, err := sourceURL("https://example.test/page")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/page", got)

	got, err = sourceURL("/tmp/page.html")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/page.html", got)

	got, err = sourceURL("page.html")
	require.NoError(t, err)
	assert.Regexp(t, `^file:///.+/page\.html$`, got)
}

func TestInvocationFrom_Uninitialized(t *testing.T) {
	cmd := newOffsetCmd()
	cmd.SetArgs([]string{"-s", "//div", "page.html"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without an initialized configuration")
}
