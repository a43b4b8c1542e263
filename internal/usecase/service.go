package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/annehoy/internal/domain"
	"svw.info/annehoy/internal/ports"
)

type Service struct {
	Verifier  ports.Verifier
	Solutions ports.SolutionSource
}

func NewService(v ports.Verifier, s ports.SolutionSource) *Service {
	return &Service{Verifier: v, Solutions: s}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Verify(ctx context.Context, s *domain.Solution) (domain.Verdict, ports.Stats, error) {
	if u.Verifier == nil {
		return domain.Verdict{}, ports.Stats{}, errNotConfigured
	}
	return u.Verifier.Verify(ctx, s)
}

// VerifyNamed loads a solution from the configured source and verifies it.
func (u *Service) VerifyNamed(ctx context.Context, name string) (domain.Verdict, ports.Stats, error) {
	if u.Solutions == nil {
		return domain.Verdict{}, ports.Stats{}, errNotConfigured
	}
	s, err := u.Solutions.Load(ctx, name)
	if err != nil {
		return domain.Verdict{}, ports.Stats{}, fmt.Errorf("load solution %q: %w", name, err)
	}
	return u.Verify(ctx, s)
}

// Solution files
func (u *Service) Load(ctx context.Context, name string) (*domain.Solution, error) {
	if u.Solutions == nil {
		return nil, errNotConfigured
	}
	return u.Solutions.Load(ctx, name)
}
func (u *Service) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	if u.Solutions == nil {
		return nil, errNotConfigured
	}
	return u.Solutions.List(ctx)
}
