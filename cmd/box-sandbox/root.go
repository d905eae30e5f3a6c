package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options holds command-line overrides for the config file
type options struct {
	configPath string
	mute       bool
	logFile    string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "box-sandbox",
		Short: "Drag with the mouse to enclose two points in a Box2",
		Long: `box-sandbox draws Box2 values in the terminal.

Press and drag to enclose two cells. Keys:
  u  undo last box
  f  flip last box (same cells, reversed signed size)
  c  clear
  q  quit (also Esc, Ctrl-C)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}
			return runSandbox(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to TOML config")
	flags.BoolVar(&opts.mute, "mute", false, "disable the commit tone")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig layers explicitly set flags over the loaded config
func resolveConfig(opts options, flags *pflag.FlagSet) (Config, error) {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return Config{}, err
	}
	if flags.Changed("mute") {
		cfg.Mute = opts.mute
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func runSandbox(ctx context.Context, cfg Config) error {
	logger, closeLog, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before anything reaches stderr
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			logger.Error("sandbox crashed", "panic", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "\nBOX-SANDBOX CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.Clear()

	ch, err := newChime(cfg.ToneHz, cfg.Mute)
	if err != nil {
		// Non-fatal, the sandbox runs silent
		logger.Warn("audio unavailable", "err", err)
	}
	defer ch.close()

	s := newSandbox(screen, logger, ch)
	for _, b := range cfg.Boxes() {
		if !s.add(b) {
			logger.Warn("duplicate box in config", "box", b)
		}
	}
	logger.Info("sandbox started", "boxes", len(s.boxes), "mute", cfg.Mute)

	return s.run(ctx)
}
