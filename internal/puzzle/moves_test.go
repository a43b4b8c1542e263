package puzzle

import (
	"errors"
	"testing"

	"svw.info/annehoy/internal/domain"
)

func TestMoveSequenceBasics(t *testing.T) {
	var s MoveSequence
	if s.Len() != 0 {
		t.Fatalf("zero value length = %d", s.Len())
	}
	s.Append(0, 1)
	s.Append(1, 2)
	if s.Len() != 2 {
		t.Fatalf("length = %d, want 2", s.Len())
	}
	mv, err := s.At(1)
	if err != nil || mv != (domain.Move{From: 1, To: 2}) {
		t.Fatalf("At(1) = %v, %v", mv, err)
	}
	for _, i := range []int{-1, 2} {
		if _, err := s.At(i); !errors.Is(err, domain.ErrOutOfRange) {
			t.Fatalf("At(%d) err=%v, want ErrOutOfRange", i, err)
		}
	}
	if got := s.String(); got != "MoveSequence([(0,1) (1,2)])" {
		t.Fatalf("String() = %q", got)
	}
}

func TestNewMoveSequenceCopiesInput(t *testing.T) {
	in := []domain.Move{{From: 0, To: 1}}
	s := NewMoveSequence(in...)
	in[0].To = 3
	if mv, _ := s.At(0); mv.To != 1 {
		t.Fatalf("sequence aliases caller slice: %v", mv)
	}
	all := s.All()
	all[0].From = 2
	if mv, _ := s.At(0); mv.From != 0 {
		t.Fatalf("All() exposes internal slice: %v", mv)
	}
}

func TestNewMoveSequenceAcceptsIllegalMoves(t *testing.T) {
	s := NewMoveSequence(domain.Move{From: 7, To: 7}, domain.Move{From: -1, To: 0})
	if s.Len() != 2 {
		t.Fatalf("length = %d, want 2", s.Len())
	}
}

func TestReplayMatchesDirectPlay(t *testing.T) {
	seq := NewMoveSequence(domain.Move{From: 0, To: 1}, domain.Move{From: 0, To: 2}, domain.Move{From: 1, To: 2})
	got, err := seq.Replay(4, 3)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	want := seeded(t, 4, 3)
	mustMove(t, want, 0, 1)
	mustMove(t, want, 0, 2)
	mustMove(t, want, 1, 2)

	if !got.Equal(want) {
		t.Fatalf("replayed layout differs:\n%s\n\nwant:\n%s", got, want)
	}
	if got.MoveCount() != 3 {
		t.Fatalf("move count = %d, want 3", got.MoveCount())
	}
	if seq.Len() != 3 {
		t.Fatalf("Replay changed the sequence: len %d", seq.Len())
	}
}

func TestReplayRejectsIllegalMove(t *testing.T) {
	seq := NewMoveSequence(domain.Move{From: 0, To: 1}, domain.Move{From: 0, To: 1})
	m, err := seq.Replay(4, 3)
	if m != nil {
		t.Fatalf("Replay returned a model on failure")
	}
	var ime *domain.IllegalMoveError
	if !errors.As(err, &ime) {
		t.Fatalf("Replay err=%v, want *IllegalMoveError", err)
	}
	if ime.Step != 1 || ime.Violation != domain.ViolationLargerOnSmaller {
		t.Fatalf("got step=%d violation=%v, want step=1 larger-on-smaller", ime.Step, ime.Violation)
	}
}

func TestReplayBadSetup(t *testing.T) {
	var s MoveSequence
	if _, err := s.Replay(0, 3); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("Replay(0,3) err=%v", err)
	}
	if _, err := s.Replay(3, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Replay(3,0) err=%v", err)
	}
}

func TestModelMovesReplayToSameLayout(t *testing.T) {
	m := seeded(t, 4, 5)
	for _, mv := range []domain.Move{{From: 0, To: 3}, {From: 0, To: 2}, {From: 3, To: 2}, {From: 0, To: 1}} {
		mustMove(t, m, mv.From, mv.To)
	}
	again, err := m.Moves().Replay(4, 5)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !again.Equal(m) {
		t.Fatalf("replay of recorded moves differs:\n%s\n\n%s", again, m)
	}
}
