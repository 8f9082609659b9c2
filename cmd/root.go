// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/scalpel-geometry/internal/config"
	"github.com/xkilldash9x/scalpel-geometry/internal/observability"
)

type contextKey string

const invocationKey contextKey = "invocation"

// invocation carries the state every subcommand needs, resolved once in PersistentPreRunE.
type invocation struct {
	id     string
	cfg    *config.Config
	logger *zap.Logger
	opener pageOpener
	static bool
	frame  string
}

func invocationFrom(ctx context.Context) (*invocation, error) {
	inv, ok := ctx.Value(invocationKey).(*invocation)
	if !ok || inv == nil {
		return nil, errors.New("command invoked without an initialized configuration")
	}
	return inv, nil
}

// NewRootCommand creates the command tree backed by a real browser.
func NewRootCommand() *cobra.Command {
	return newRootCmd(browserOpener{})
}

// newRootCmd builds the command tree. live opens non-static pages; static mode always
// uses the in-memory document model.
func newRootCmd(live pageOpener) *cobra.Command {
	var (
		cfgFile  string
		logLevel string
		static   bool
		frame    string
		headless bool
		viewport string
	)

	rootCmd := &cobra.Command{
		Use:           "scalpel-geometry",
		Short:         "Measures and scrolls page elements across frames.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(v, cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			if err := v.BindPFlag("logger.level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return fmt.Errorf("failed to load or validate config: %w", err)
			}
			if err := applyOverrides(cmd.Flags(), cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if err := observability.Initialize(cfg.Logger(), zapcore.AddSync(cmd.ErrOrStderr())); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			inv := &invocation{
				id:     uuid.NewString(),
				cfg:    cfg,
				static: static,
				frame:  frame,
				opener: live,
			}
			if static {
				inv.opener = staticOpener{}
			}
			inv.logger = observability.GetLogger().With(zap.String("invocation_id", inv.id), zap.String("command", cmd.Name()))
			inv.logger.Debug("Starting scalpel-geometry", zap.String("version", Version), zap.Bool("static", static))

			cmd.SetContext(context.WithValue(cmd.Context(), invocationKey, inv))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml or ~/.scalpel-geometry/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&static, "static", false, "load the source as a static HTML file with data-layout boxes instead of launching a browser")
	flags.StringVar(&frame, "frame", "", "XPath of the frame element to run inside (repeat by nesting with ' >> ')")
	flags.BoolVar(&headless, "headless", true, "run the browser headless")
	flags.StringVar(&viewport, "viewport", "", "viewport size as WIDTHxHEIGHT")

	rootCmd.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)

	rootCmd.AddCommand(
		newOffsetCmd(),
		newMoveCmd(),
		newScrollCmd(),
		newMetricsCmd(),
	)
	return rootCmd
}

// Execute runs the command tree under ctx and logs any failure.
func Execute(ctx context.Context) error {
	defer observability.Sync()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		return err
	}
	return nil
}

// initializeConfig reads the config file and SCALPEL_GEOMETRY_* environment variables.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to resolve config path %q: %w", cfgFile, err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home + "/.scalpel-geometry")
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SCALPEL_GEOMETRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// applyOverrides copies explicitly set command-line flags onto the configuration.
func applyOverrides(flags *pflag.FlagSet, cfg config.Interface) error {
	if flags.Changed("headless") {
		headless, err := flags.GetBool("headless")
		if err != nil {
			return err
		}
		cfg.SetBrowserHeadless(headless)
	}
	if flags.Changed("viewport") {
		raw, err := flags.GetString("viewport")
		if err != nil {
			return err
		}
		width, height, err := parseViewport(raw)
		if err != nil {
			return err
		}
		cfg.SetBrowserViewport(width, height)
	}
	if f := flags.Lookup("align"); f != nil && f.Changed {
		cfg.SetGeometryAlignWithTop(f.Value.String())
	}
	if flags.Changed("only-if-needed") {
		onlyIfNeeded, err := flags.GetBool("only-if-needed")
		if err != nil {
			return err
		}
		cfg.SetGeometryOnlyScrollIfNeeded(onlyIfNeeded)
	}
	if flags.Changed("no-horizontal") {
		noHorizontal, err := flags.GetBool("no-horizontal")
		if err != nil {
			return err
		}
		cfg.SetGeometryAllowHorizontalScroll(!noHorizontal)
	}
	return nil
}

// parseViewport parses "WIDTHxHEIGHT".
func parseViewport(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid viewport %q (want WIDTHxHEIGHT)", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid viewport width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid viewport height %q: %w", h, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("viewport %q must be positive", s)
	}
	return width, height, nil
}
