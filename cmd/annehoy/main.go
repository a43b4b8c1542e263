// main.go bootstraps annehoy: it builds the root Cobra command, resolves
// configuration and logging, and maps errors to exit codes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"svw.info/annehoy/internal/config"
	"svw.info/annehoy/internal/domain"
	"svw.info/annehoy/internal/infrastructure/storage"
	"svw.info/annehoy/internal/logging"
	"svw.info/annehoy/internal/usecase"
	"svw.info/annehoy/internal/validator"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store *storage.FS
	svc   *usecase.Service
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	rootCmd.SetArgs(normalizeMoveArgs(os.Args[1:]))
	err := rootCmd.ExecuteContext(ctx)
	handleError(os.Stderr, err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	var configPath string
	cmd := &cobra.Command{
		Use:           "annehoy",
		Short:         "Play and verify Towers of Anne Hoy games",
		Long:          "annehoy applies and replays moves on a multi-stool Towers of Hanoi and checks recorded solutions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			a.cfg = cfg
			a.log = log
			a.store = storage.NewFS(cfg.SolutionsDir)
			a.svc = usecase.NewService(validator.New(log), a.store)
			log.Debug("configured",
				zap.Int("stools", cfg.Stools),
				zap.Int("discs", cfg.Discs),
				zap.String("solutions", cfg.SolutionsDir),
				zap.String("config", cfg.File),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: ./config.yaml or $XDG_CONFIG_HOME/annehoy/config.yaml)")
	config.BindFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newPlayCommand(a),
		newReplayCommand(a),
		newVerifyCommand(a),
		newListCommand(a),
	)
	return cmd
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case errors.Is(err, domain.ErrIllegalMove):
		message = fmt.Sprintf("%s\nHint: a disc may only move onto an empty stool or onto a larger disc.", err)
	case errors.Is(err, domain.ErrInvalidInput):
		message = fmt.Sprintf("%s\nHint: moves are written FROM:TO using zero-based stool indices.", err)
	case errors.Is(err, os.ErrNotExist):
		message = fmt.Sprintf("%s\nHint: run 'annehoy list' to see the solutions in --solutions-dir.", err)
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
