package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/rip-tui/rip/internal/proc"
	"github.com/rip-tui/rip/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"

	logFile string
)

var errNotATerminal = errors.New("rip needs an interactive terminal")

// SetVersionBuildCommitString records the values injected at link time.
// Empty strings keep the defaults.
func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
	rootCmd.Version = versionString()
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rip",
		Short: "Kill processes listening on ports",
		Long: `rip lists every process listening on a TCP or UDP port and kills the one
you pick.

Keys:
  up/k, down/j   move the selection
  enter/d        kill the selected process (SIGKILL)
  r              refresh the list
  q/esc          quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionString(),
		RunE:          run,
	}
	cmd.SetVersionTemplate("rip {{.Version}}\n")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return errNotATerminal
	}

	logger, closeLog, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	logger.Debug("starting", "version", version)
	return tui.Start(ctx, tui.Options{
		Scanner:    proc.NewScanner(proc.WithLogger(logger)),
		Terminator: proc.NewTerminator(proc.WithLogger(logger)),
		Logger:     logger,
		Version:    version,
	})
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newLogger writes to path when set. Without a path logs are discarded:
// the terminal belongs to the TUI.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
		Prefix:          "rip",
	})
	return logger, func() { f.Close() }, nil
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
