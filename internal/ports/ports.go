package ports

import (
	"context"
	"time"

	"svw.info/annehoy/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Moves    int
	Duration time.Duration
}

// Verifier replays a candidate solution and judges it.
type Verifier interface {
	Verify(ctx context.Context, s *domain.Solution) (domain.Verdict, Stats, error)
}

// SolutionSource reads candidate solutions from YAML or JSON files.
type SolutionSource interface {
	Load(ctx context.Context, name string) (*domain.Solution, error)
	List(ctx context.Context) ([]domain.SolutionMeta, error)
}
