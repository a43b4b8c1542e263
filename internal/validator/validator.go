package validator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"svw.info/annehoy/internal/domain"
	"svw.info/annehoy/internal/ports"
	"svw.info/annehoy/internal/puzzle"
)

// Header bounds for solution files. The target layout and its diagram grow
// with these, so larger games are refused before anything is built.
const (
	MaxStools = 32
	MaxDiscs  = 256
)

// Replayer judges a solution by replaying it on a standard game and comparing
// the result with the all-on-the-last-stool target.
type Replayer struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Replayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Replayer{log: log}
}

// Verify reports an illegal move through the verdict, not the error. The error
// is reserved for a cancelled context or a malformed solution header.
func (v *Replayer) Verify(ctx context.Context, s *domain.Solution) (domain.Verdict, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, ports.Stats{}, err
	}
	if s == nil {
		return domain.Verdict{}, ports.Stats{}, fmt.Errorf("%w: nil solution", domain.ErrInvalidInput)
	}
	if s.Stools < 1 || s.Discs < 1 {
		return domain.Verdict{}, ports.Stats{}, fmt.Errorf("%w: solution %q needs stools and discs >= 1 (got %d, %d)",
			domain.ErrInvalidInput, s.Name, s.Stools, s.Discs)
	}
	if s.Stools > MaxStools || s.Discs > MaxDiscs {
		return domain.Verdict{}, ports.Stats{}, fmt.Errorf("%w: solution %q exceeds %d stools or %d discs (got %d, %d)",
			domain.ErrInvalidInput, s.Name, MaxStools, MaxDiscs, s.Stools, s.Discs)
	}

	out := domain.Verdict{Name: s.Name, FailedAt: -1}
	seq := puzzle.NewMoveSequence(s.Moves...)
	m, err := seq.Replay(s.Stools, s.Discs)
	if err != nil {
		var ime *domain.IllegalMoveError
		if !errors.As(err, &ime) {
			return domain.Verdict{}, ports.Stats{}, err
		}
		out.FailedAt = ime.Step
		out.Moves = ime.Step
		out.Violation = ime.Violation
		out.Reason = ime.Error()
		st := ports.Stats{Moves: ime.Step, Duration: time.Since(start)}
		v.log.Debug("solution rejected",
			zap.String("name", s.Name),
			zap.Int("step", ime.Step),
			zap.Stringer("violation", ime.Violation),
		)
		return out, st, nil
	}

	target, err := puzzle.Target(s.Stools, s.Discs)
	if err != nil {
		return domain.Verdict{}, ports.Stats{}, err
	}
	out.Legal = true
	out.Moves = m.MoveCount()
	out.Solved = m.Equal(target)
	out.Layout = m.Render()
	if !out.Solved {
		out.Target = target.Render()
	}
	st := ports.Stats{Moves: out.Moves, Duration: time.Since(start)}
	v.log.Debug("solution replayed",
		zap.String("name", s.Name),
		zap.Int("moves", out.Moves),
		zap.Bool("solved", out.Solved),
		zap.Duration("dur", st.Duration),
	)
	return out, st, nil
}
