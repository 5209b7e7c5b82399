// Command kilt is a small terminal text editor in the kilo tradition.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avellis/kilt/internal/config"
	"github.com/avellis/kilt/internal/editor"
	"github.com/avellis/kilt/internal/logging"
)

var (
	configPath string
	logPath    string
	tabStop    int
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kilt [file]",
		Short:   "A small terminal text editor",
		Version: editor.Version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}
	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to a YAML config file")
	cmd.Flags().StringVar(&logPath, "log-file", defaultLogPath(), "path to a diagnostics log file (disabled if empty)")
	cmd.Flags().IntVar(&tabStop, "tab-stop", 0, "override the configured tab stop")
	return cmd
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/kilt/config.yaml"
}

func defaultLogPath() string {
	return filepath.Join(os.TempDir(), "kilt.log")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilt: %v, using defaults\n", err)
		cfg = config.Config{}
	}

	logger, closeLog, err := logging.Open(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := append(cfg.Options(), editor.WithLogger(logger))
	if tabStop > 0 {
		opts = append(opts, editor.WithTabStop(tabStop))
	}
	e := editor.New(opts...)

	if err := e.EnableRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}

	if len(args) == 1 {
		if err := e.Open(args[0]); err != nil {
			e.RestoreTerminal()
			return err
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	e.Run()
	return nil
}
