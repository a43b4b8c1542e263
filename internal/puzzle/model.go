// Package puzzle holds the Towers of Anne Hoy game state: stools of discs,
// the move legality rules, and the log of moves applied so far.
package puzzle

import (
	"fmt"

	"svw.info/annehoy/internal/domain"
)

// Model is a game of Towers of Anne Hoy. Within a stool, discs are stored
// bottom first and their sizes strictly decrease towards the top.
type Model struct {
	stools [][]domain.Disc
	discs  int
	moves  MoveSequence
}

// NewModel returns an unseeded game with the given number of empty stools.
func NewModel(stools int) (*Model, error) {
	if stools < 1 {
		return nil, fmt.Errorf("%w: need at least one stool, got %d", domain.ErrConfiguration, stools)
	}
	return &Model{stools: make([][]domain.Disc, stools), discs: -1}, nil
}

// Seed puts discs of size n..1 on stool 0, largest at the bottom.
// A model can be seeded once, and only while every stool is empty.
func (m *Model) Seed(discs int) error {
	if discs < 1 {
		return fmt.Errorf("%w: need at least one disc, got %d", domain.ErrInvalidInput, discs)
	}
	if m.discs >= 0 {
		return fmt.Errorf("%w: model already seeded with %d discs", domain.ErrConfiguration, m.discs)
	}
	for i := range m.stools {
		if len(m.stools[i]) > 0 {
			return fmt.Errorf("%w: stool %d is not empty", domain.ErrConfiguration, i)
		}
	}
	m.discs = discs
	first := make([]domain.Disc, 0, discs)
	for size := discs; size > 0; size-- {
		first = append(first, domain.NewDisc(size))
	}
	m.stools[0] = first
	return nil
}

// Place adds d on top of stool i without recording a move. It is meant for
// building custom layouts and is refused once the model has been seeded.
func (m *Model) Place(i int, d domain.Disc) error {
	if m.discs >= 0 {
		return fmt.Errorf("%w: cannot place discs on a seeded model", domain.ErrConfiguration)
	}
	if !m.valid(i) {
		return fmt.Errorf("%w: stool %d of %d", domain.ErrOutOfRange, i, len(m.stools))
	}
	if _, found := m.Locate(d); found {
		return fmt.Errorf("%w: %v is already on the board", domain.ErrInvalidInput, d)
	}
	if top, ok := m.Top(i); ok && d.Size() > top.Size() {
		return fmt.Errorf("%w: %v onto %v on stool %d", domain.ErrIllegalMove, d, top, i)
	}
	m.stools[i] = append(m.stools[i], d)
	return nil
}

func (m *Model) valid(i int) bool { return i >= 0 && i < len(m.stools) }

func (m *Model) Stools() int { return len(m.stools) }

// Discs returns the seeded disc count, or -1 before Seed.
func (m *Model) Discs() int { return m.discs }

// Stool returns a copy of stool i, bottom first.
func (m *Model) Stool(i int) ([]domain.Disc, error) {
	if !m.valid(i) {
		return nil, fmt.Errorf("%w: stool %d of %d", domain.ErrOutOfRange, i, len(m.stools))
	}
	return append([]domain.Disc(nil), m.stools[i]...), nil
}

// Height returns the number of discs on stool i.
func (m *Model) Height(i int) (int, error) {
	if !m.valid(i) {
		return 0, fmt.Errorf("%w: stool %d of %d", domain.ErrOutOfRange, i, len(m.stools))
	}
	return len(m.stools[i]), nil
}

// Top returns the topmost disc of stool i; ok is false when the stool is empty
// or does not exist.
func (m *Model) Top(i int) (d domain.Disc, ok bool) {
	if !m.valid(i) || len(m.stools[i]) == 0 {
		return domain.Disc{}, false
	}
	s := m.stools[i]
	return s[len(s)-1], true
}

// DiscAt returns the disc at the given height (0 = bottom) of stool i.
func (m *Model) DiscAt(i, height int) (domain.Disc, bool) {
	if !m.valid(i) || height < 0 || height >= len(m.stools[i]) {
		return domain.Disc{}, false
	}
	return m.stools[i][height], true
}

// Locate returns the stool holding a disc equal to d. Stools are scanned in
// index order and each stool bottom to top; the first match wins.
func (m *Model) Locate(d domain.Disc) (int, bool) {
	for i, s := range m.stools {
		for _, c := range s {
			if c == d {
				return i, true
			}
		}
	}
	return -1, false
}

// Move moves the top disc of stool from onto stool to and records it.
// A rejected move returns *domain.IllegalMoveError and leaves the model untouched.
func (m *Model) Move(from, to int) error {
	if v := m.check(from, to); v != domain.ViolationNone {
		return &domain.IllegalMoveError{From: from, To: to, Step: m.MoveCount(), Violation: v}
	}
	src := m.stools[from]
	d := src[len(src)-1]
	m.stools[from] = src[:len(src)-1]
	m.stools[to] = append(m.stools[to], d)
	m.moves.Append(from, to)
	return nil
}

func (m *Model) check(from, to int) domain.MoveViolation {
	switch {
	case !m.valid(from):
		return domain.ViolationSourceRange
	case !m.valid(to):
		return domain.ViolationDestinationRange
	case from == to:
		return domain.ViolationSameStool
	case len(m.stools[from]) == 0:
		return domain.ViolationEmptySource
	}
	top, _ := m.Top(from)
	if dst, ok := m.Top(to); ok && top.Size() > dst.Size() {
		return domain.ViolationLargerOnSmaller
	}
	return domain.ViolationNone
}

func (m *Model) MoveCount() int { return m.moves.Len() }

// Moves returns a copy of the move log; changing it does not affect the model.
func (m *Model) Moves() *MoveSequence { return NewMoveSequence(m.moves.moves...) }

// Equal reports whether both models show the same discs on the same stools.
// Disc counts and move history are ignored.
func (m *Model) Equal(o *Model) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.stools) != len(o.stools) {
		return false
	}
	for i := range m.stools {
		a, b := m.stools[i], o.stools[i]
		if len(a) != len(b) {
			return false
		}
		for h := range a {
			if a[h] != b[h] {
				return false
			}
		}
	}
	return true
}

func (m *Model) String() string { return m.Render() }

// Target returns the standard goal layout: all discs on the last stool.
func Target(stools, discs int) (*Model, error) {
	m, err := NewModel(stools)
	if err != nil {
		return nil, err
	}
	if discs < 1 {
		return nil, fmt.Errorf("%w: need at least one disc, got %d", domain.ErrInvalidInput, discs)
	}
	last := make([]domain.Disc, 0, discs)
	for size := discs; size > 0; size-- {
		last = append(last, domain.NewDisc(size))
	}
	m.stools[stools-1] = last
	return m, nil
}
