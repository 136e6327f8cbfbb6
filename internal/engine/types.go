package engine

import (
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
)

// SolveStatus qualifies how trustworthy a returned build is.
type SolveStatus string

// Solve statuses
const (
	// SolveStatusOptimal means the build is proven optimal.
	SolveStatusOptimal SolveStatus = "optimal"
	// SolveStatusFeasible means the build satisfies every constraint
	// but optimality was not proven within the budget. This is valid
	// product behavior, not an error.
	SolveStatusFeasible SolveStatus = "feasible"
)

// OptimizeBuildInput defines the request for one optimization call.
type OptimizeBuildInput struct {
	// Weapon is the resolved weapon record; name resolution happens in
	// the caller.
	Weapon *entities.Weapon
	// WishList is the prioritized list of desired talents. Order only
	// matters through the solver's unspecified tie-breaking.
	WishList []entities.WishItem
}

// OptimizeBuildOutput defines the response for one optimization call.
type OptimizeBuildOutput struct {
	Solution *entities.Solution
	Status   SolveStatus
}
