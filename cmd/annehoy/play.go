package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/annehoy/internal/domain"
	"svw.info/annehoy/internal/puzzle"
)

func newPlayCommand(a *app) *cobra.Command {
	var each bool
	cmd := &cobra.Command{
		Use:   "play [MOVE...]",
		Short: "Seed a game and apply moves one at a time",
		Long:  "play seeds --discs discs on stool 0 of a --stools game and applies each FROM:TO move in order, stopping at the first illegal one.",
		Example: `  annehoy play --stools 3 --discs 2 0:1 0:2 1:2
  annehoy play --each 0:3 0:2 3:2
  annehoy play -- -1:0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := domain.ParseMoves(args)
			if err != nil {
				return err
			}
			m, err := puzzle.NewModel(a.cfg.Stools)
			if err != nil {
				return err
			}
			if err := m.Seed(a.cfg.Discs); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, mv := range moves {
				if err := m.Move(mv.From, mv.To); err != nil {
					fmt.Fprintf(out, "%s\n", m)
					return err
				}
				a.log.Debug("move applied", zap.Int("from", mv.From), zap.Int("to", mv.To), zap.Int("count", m.MoveCount()))
				if each {
					fmt.Fprintf(out, "after %v:\n%s\n\n", mv, m)
				}
			}
			printGame(out, m)
			return nil
		},
	}
	cmd.Flags().BoolVar(&each, "each", false, "Print the stools after every move")
	return cmd
}

func newReplayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "replay [MOVE...]",
		Short:   "Replay a move sequence onto a freshly seeded game",
		Example: `  annehoy replay --stools 4 --discs 3 0:1 0:2 1:2
  annehoy replay -- 0:1 -1:2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := domain.ParseMoves(args)
			if err != nil {
				return err
			}
			seq := puzzle.NewMoveSequence(moves...)
			m, err := seq.Replay(a.cfg.Stools, a.cfg.Discs)
			if err != nil {
				return err
			}
			a.log.Info("replayed", zap.Stringer("sequence", seq), zap.Int("moves", m.MoveCount()))
			printGame(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func printGame(w io.Writer, m *puzzle.Model) {
	fmt.Fprintf(w, "%s\n", m)
	fmt.Fprintf(w, "moves: %d\n", m.MoveCount())
}
