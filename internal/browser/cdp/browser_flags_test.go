package cdp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/scalpel-geometry/internal/config"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		value interface{}
		ok    bool
	}{
		{"--mute-audio", "mute-audio", true, true},
		{"mute-audio", "mute-audio", true, true},
		{"--lang=en-US", "lang", "en-US", true},
		{"  --window-position=0,0 ", "window-position", "0,0", true},
		{"--user-agent=a=b", "user-agent", "a=b", true},
		{"--", "", nil, false},
		{"", "", nil, false},
		{"--=value", "", nil, false},
	}
	for _, tt := range tests {
		name, value, ok := parseFlag(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.name, name, tt.in)
		assert.Equal(t, tt.value, value, tt.in)
	}
}

func TestExecAllocatorOptions(t *testing.T) {
	base := config.BrowserConfig{Headless: true}
	baseline := len(ExecAllocatorOptions(base))

	t.Run("Headless and headed add one option each", func(t *testing.T) {
		headed := base
		headed.Headless = false
		assert.Equal(t, baseline, len(ExecAllocatorOptions(headed)))
	})

	t.Run("GPU and viewport", func(t *testing.T) {
		cfg := base
		cfg.DisableGPU = true
		cfg.Viewport = config.ViewportConfig{Width: 1024, Height: 768}
		assert.Equal(t, baseline+2, len(ExecAllocatorOptions(cfg)))
	})

	t.Run("Partial viewport is ignored", func(t *testing.T) {
		cfg := base
		cfg.Viewport = config.ViewportConfig{Width: 1024}
		assert.Equal(t, baseline, len(ExecAllocatorOptions(cfg)))
	})

	t.Run("Only valid args become flags", func(t *testing.T) {
		cfg := base
		cfg.Args = []string{"--mute-audio", "--", "--lang=en-US"}
		assert.Equal(t, baseline+2, len(ExecAllocatorOptions(cfg)))
	})

	t.Run("Defaults are not modified", func(t *testing.T) {
		cfg := base
		cfg.Args = []string{"--a", "--b", "--c"}
		first := ExecAllocatorOptions(cfg)
		second := ExecAllocatorOptions(base)
		assert.Len(t, first, baseline+3)
		assert.Len(t, second, baseline)
	})
}
