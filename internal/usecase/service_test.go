package usecase

import (
	"context"
	"errors"
	"os"
	"testing"

	"svw.info/annehoy/internal/domain"
	"svw.info/annehoy/internal/validator"
)

type memSource map[string]*domain.Solution

func (m memSource) Load(ctx context.Context, name string) (*domain.Solution, error) {
	s, ok := m[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return s, nil
}

func (m memSource) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	var out []domain.SolutionMeta
	for name, s := range m {
		out = append(out, domain.SolutionMeta{Name: name, Stools: s.Stools, Discs: s.Discs, Moves: len(s.Moves)})
	}
	return out, nil
}

func TestServiceNotConfigured(t *testing.T) {
	var u Service
	ctx := context.Background()
	if _, _, err := u.Verify(ctx, &domain.Solution{}); !errors.Is(err, errNotConfigured) {
		t.Fatalf("Verify err=%v", err)
	}
	if _, _, err := u.VerifyNamed(ctx, "x"); !errors.Is(err, errNotConfigured) {
		t.Fatalf("VerifyNamed err=%v", err)
	}
	if _, err := u.Load(ctx, "x"); !errors.Is(err, errNotConfigured) {
		t.Fatalf("Load err=%v", err)
	}
	if _, err := u.List(ctx); !errors.Is(err, errNotConfigured) {
		t.Fatalf("List err=%v", err)
	}
}

func TestVerifyNamed(t *testing.T) {
	src := memSource{
		"one": {Name: "one", Stools: 3, Discs: 1, Moves: []domain.Move{{From: 0, To: 2}}},
	}
	u := NewService(validator.New(nil), src)
	ctx := context.Background()

	v, st, err := u.VerifyNamed(ctx, "one")
	if err != nil {
		t.Fatalf("VerifyNamed: %v", err)
	}
	if !v.Solved || st.Moves != 1 {
		t.Fatalf("verdict %+v stats %+v", v, st)
	}

	if _, _, err := u.VerifyNamed(ctx, "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing solution err=%v", err)
	}
	list, err := u.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %v, %v", list, err)
	}
}
