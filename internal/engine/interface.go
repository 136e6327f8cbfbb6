// Package engine defines the contract of the build-optimization engine.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/DSestu/MH-Wilds-Tools/internal/engine Engine

import (
	"context"
)

// Engine computes optimal equipment builds. Implementations are
// stateless across calls: every invocation builds a fresh decision
// model from the shared read-only catalog.
type Engine interface {
	// OptimizeBuild selects one armor piece per slot, one charm, and a
	// multiset of jewels maximizing the wish-list goals for the fixed
	// weapon.
	// Returns errors.InvalidArgument for unknown wish-list talents or
	// out-of-range weights/targets.
	// Returns errors.Infeasible if the model has no satisfying
	// assignment.
	// Returns errors.DeadlineExceeded if the solve budget expired
	// without any feasible build.
	OptimizeBuild(ctx context.Context, input *OptimizeBuildInput) (*OptimizeBuildOutput, error)
}
