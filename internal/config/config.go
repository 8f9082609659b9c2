// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Interface defines a contract for accessing application configuration.
// This allows for mocking and decoupling components from the concrete Config struct.
type Interface interface {
	Logger() LoggerConfig
	Browser() BrowserConfig
	Geometry() GeometryConfig

	// Browser Setters
	SetBrowserHeadless(bool)
	SetBrowserViewport(width, height int)

	// Geometry Setters
	SetGeometryAlignWithTop(string)
	SetGeometryAllowHorizontalScroll(bool)
	SetGeometryOnlyScrollIfNeeded(bool)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	BrowserCfg  BrowserConfig  `mapstructure:"browser" yaml:"browser"`
	GeometryCfg GeometryConfig `mapstructure:"geometry" yaml:"geometry"`
}

var _ Interface = (*Config)(nil)

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Browser() BrowserConfig   { return c.BrowserCfg }
func (c *Config) Geometry() GeometryConfig { return c.GeometryCfg }

// --- Interface Method Implementations (Setters) ---

// Browser Setters
func (c *Config) SetBrowserHeadless(b bool) { c.BrowserCfg.Headless = b }
func (c *Config) SetBrowserViewport(width, height int) {
	c.BrowserCfg.Viewport.Width = width
	c.BrowserCfg.Viewport.Height = height
}

// Geometry Setters
func (c *Config) SetGeometryAlignWithTop(a string)        { c.GeometryCfg.AlignWithTop = a }
func (c *Config) SetGeometryAllowHorizontalScroll(b bool) { c.GeometryCfg.AllowHorizontalScroll = b }
func (c *Config) SetGeometryOnlyScrollIfNeeded(b bool)    { c.GeometryCfg.OnlyScrollIfNeeded = b }

// LoggerConfig defines all settings related to logging.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// ViewportConfig is the browser window size in CSS pixels.
type ViewportConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// BrowserConfig holds settings for the headless browser that pages are measured in.
type BrowserConfig struct {
	Headless          bool           `mapstructure:"headless" yaml:"headless"`
	DisableGPU        bool           `mapstructure:"disable_gpu" yaml:"disable_gpu"`
	Args              []string       `mapstructure:"args" yaml:"args"`
	Viewport          ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	NavigationTimeout time.Duration  `mapstructure:"navigation_timeout" yaml:"navigation_timeout"`
	CallTimeout       time.Duration  `mapstructure:"call_timeout" yaml:"call_timeout"`
	PostLoadWait      time.Duration  `mapstructure:"post_load_wait" yaml:"post_load_wait"`
}

// GeometryConfig holds the default scroll-into-view alignment used by the CLI.
type GeometryConfig struct {
	// AlignWithTop is "auto", "top" or "bottom".
	AlignWithTop          string `mapstructure:"align_with_top" yaml:"align_with_top"`
	AllowHorizontalScroll bool   `mapstructure:"allow_horizontal_scroll" yaml:"allow_horizontal_scroll"`
	OnlyScrollIfNeeded    bool   `mapstructure:"only_scroll_if_needed" yaml:"only_scroll_if_needed"`
}

// NewDefaultConfig creates a configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "scalpel-geometry")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.disable_gpu", true)
	v.SetDefault("browser.args", []string{})
	v.SetDefault("browser.viewport.width", 1280)
	v.SetDefault("browser.viewport.height", 800)
	v.SetDefault("browser.navigation_timeout", "30s")
	v.SetDefault("browser.call_timeout", "5s")
	v.SetDefault("browser.post_load_wait", "0s")

	// -- Geometry --
	v.SetDefault("geometry.align_with_top", "auto")
	v.SetDefault("geometry.allow_horizontal_scroll", true)
	v.SetDefault("geometry.only_scroll_if_needed", false)
}

// NewConfigFromViper unmarshals and validates a configuration from a populated viper instance.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.BrowserCfg.Viewport.Width <= 0 || c.BrowserCfg.Viewport.Height <= 0 {
		return fmt.Errorf("browser.viewport width and height must be positive integers")
	}
	if c.BrowserCfg.NavigationTimeout <= 0 {
		return fmt.Errorf("browser.navigation_timeout must be positive")
	}
	if c.BrowserCfg.CallTimeout <= 0 {
		return fmt.Errorf("browser.call_timeout must be positive")
	}
	if c.BrowserCfg.PostLoadWait < 0 {
		return fmt.Errorf("browser.post_load_wait cannot be negative")
	}
	if err := c.GeometryCfg.Validate(); err != nil {
		return fmt.Errorf("geometry configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the Geometry configuration.
func (g *GeometryConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(g.AlignWithTop)) {
	case "", "auto", "top", "bottom":
		return nil
	}
	return fmt.Errorf("geometry.align_with_top must be one of auto, top or bottom, got %q", g.AlignWithTop)
}
