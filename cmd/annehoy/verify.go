package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/annehoy/internal/domain"
)

var (
	errRejected = errors.New("solution rejected")
	errUnsolved = errors.New("solution does not reach the target")
)

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify NAME|FILE",
		Short: "Replay a recorded solution and check that it moves every disc to the last stool",
		Long: `verify loads a YAML or JSON solution file, either by path or by name from --solutions-dir,
replays its moves on a standard game, and reports whether every move was legal and the
discs all ended on the last stool. Missing stools/discs fields fall back to --stools/--discs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sol, err := loadSolution(a, cmd, args[0])
			if err != nil {
				return err
			}
			if sol.Stools == 0 {
				sol.Stools = a.cfg.Stools
			}
			if sol.Discs == 0 {
				sol.Discs = a.cfg.Discs
			}
			verdict, st, err := a.svc.Verify(ctx, sol)
			if err != nil {
				return err
			}
			a.log.Info("verified",
				zap.String("name", verdict.Name),
				zap.Bool("legal", verdict.Legal),
				zap.Bool("solved", verdict.Solved),
				zap.Int("moves", st.Moves),
				zap.Duration("dur", st.Duration),
			)
			return printVerdict(cmd.OutOrStdout(), verdict)
		},
	}
}

func loadSolution(a *app, cmd *cobra.Command, arg string) (*domain.Solution, error) {
	if filepath.Ext(arg) != "" {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			return a.store.LoadFile(cmd.Context(), arg)
		}
	}
	return a.svc.Load(cmd.Context(), arg)
}

func printVerdict(w io.Writer, v domain.Verdict) error {
	switch {
	case !v.Legal:
		fmt.Fprintf(w, "%s %s: move #%d rejected (%s)\n", color.RedString("ILLEGAL"), v.Name, v.FailedAt, v.Violation)
		return fmt.Errorf("%w: %s", errRejected, v.Reason)
	case !v.Solved:
		fmt.Fprintf(w, "%s %s: %d legal moves, discs not all on the last stool\n", color.YellowString("UNSOLVED"), v.Name, v.Moves)
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(v.Layout + "\n"),
			B:        difflib.SplitLines(v.Target + "\n"),
			FromFile: "reached",
			ToFile:   "target",
			Context:  3,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(w, diff)
		return errUnsolved
	default:
		fmt.Fprintf(w, "%s %s in %d moves\n", color.GreenString("SOLVED"), v.Name, v.Moves)
		fmt.Fprintf(w, "%s\n", v.Layout)
		return nil
	}
}
