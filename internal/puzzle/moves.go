package puzzle

import (
	"fmt"
	"strings"

	"svw.info/annehoy/internal/domain"
)

// MoveSequence is an ordered record of moves. It does not check legality;
// that only happens when the sequence is replayed. The zero value is empty
// and ready to use.
type MoveSequence struct {
	moves []domain.Move
}

// NewMoveSequence copies moves into a new sequence.
func NewMoveSequence(moves ...domain.Move) *MoveSequence {
	return &MoveSequence{moves: append([]domain.Move(nil), moves...)}
}

// At returns the i-th recorded move.
func (s *MoveSequence) At(i int) (domain.Move, error) {
	if i < 0 || i >= len(s.moves) {
		return domain.Move{}, fmt.Errorf("%w: move %d of %d", domain.ErrOutOfRange, i, len(s.moves))
	}
	return s.moves[i], nil
}

// All returns a copy of every recorded move in order.
func (s *MoveSequence) All() []domain.Move { return append([]domain.Move(nil), s.moves...) }

func (s *MoveSequence) Append(from, to int) {
	s.moves = append(s.moves, domain.Move{From: from, To: to})
}

func (s *MoveSequence) Len() int { return len(s.moves) }

// Replay seeds a fresh model with the standard layout and applies every move
// in order. The first illegal move aborts the replay and its error is returned
// as is; its Step is the index of that move.
func (s *MoveSequence) Replay(stools, discs int) (*Model, error) {
	m, err := NewModel(stools)
	if err != nil {
		return nil, err
	}
	if err := m.Seed(discs); err != nil {
		return nil, err
	}
	for _, mv := range s.moves {
		if err := m.Move(mv.From, mv.To); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (s *MoveSequence) String() string {
	parts := make([]string, len(s.moves))
	for i, mv := range s.moves {
		parts[i] = mv.String()
	}
	return "MoveSequence([" + strings.Join(parts, " ") + "])"
}
