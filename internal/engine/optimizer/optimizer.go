// Package optimizer implements the build-optimization engine on top of
// the integer-programming layer in internal/solver.
//
// Each call translates the catalog and the request into a fresh
// decision model: selection booleans for armor and charms, use counts
// for jewels, derived per-talent accumulation variables with cap and
// threshold rules, gem-slot capacity ledgers per host pool, and one
// scalar objective combining the wish-list goals on exponentially
// separated scales. Power-of-ten scaling approximates lexicographic
// ordering in a single solve; this is intentional product behavior.
package optimizer

import (
	"context"
	"log/slog"

	"github.com/DSestu/MH-Wilds-Tools/internal/engine"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
	"github.com/DSestu/MH-Wilds-Tools/internal/solver"
)

// Config holds the dependencies for the optimizer engine.
type Config struct {
	// Catalog is the full game dataset. It is validated once at
	// construction and treated as read-only afterwards.
	Catalog *entities.Catalog
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog cannot be nil")
	}
	return nil
}

// Engine is the optimizer implementation of engine.Engine.
type Engine struct {
	catalog *entities.Catalog
}

// Ensure Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

// New creates an optimizer engine. The catalog is validated here:
// data-integrity faults abort initialization so no request is ever
// served against inconsistent data.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	return &Engine{catalog: cfg.Catalog}, nil
}

// OptimizeBuild builds and solves one decision model. It is stateless:
// all derived variables live in a request-scoped build, discarded when
// the call returns.
func (e *Engine) OptimizeBuild(ctx context.Context, input *engine.OptimizeBuildInput) (*engine.OptimizeBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := e.validateRequest(input); err != nil {
		return nil, err
	}

	b := newBuild(e.catalog, input.Weapon, input.WishList)
	b.addArmorSelections()
	b.addCharmSelections()
	b.addWeaponContributions()
	b.addJewelUses()
	b.addGemFitConstraints()
	b.addTalentAccumulation()
	b.composeObjective()

	slog.Debug("Solving build model",
		"weapon", input.Weapon.Name,
		"wishes", len(input.WishList),
		"variables", b.m.NumVars(),
		"constraints", b.m.NumConstraints(),
	)

	res, err := b.m.Solve(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "solver backend failed")
	}

	switch res.Status {
	case solver.StatusOptimal, solver.StatusFeasible:
		solution := b.extract(res)
		status := engine.SolveStatusOptimal
		if res.Status == solver.StatusFeasible {
			status = engine.SolveStatusFeasible
		}
		slog.Info("Build solved",
			"weapon", input.Weapon.Name,
			"status", res.Status.String(),
			"objective", res.Objective,
		)
		return &engine.OptimizeBuildOutput{Solution: solution, Status: status}, nil
	case solver.StatusInfeasible:
		// Every slot may be left empty, so infeasibility points at a
		// modeling fault rather than a normal user outcome.
		return nil, errors.Infeasiblef("no build satisfies the constraints for weapon %q", input.Weapon.Name)
	case solver.StatusInvalid:
		return nil, errors.Internal("solver rejected the build model")
	default:
		return nil, errors.DeadlineExceeded("no feasible build found within the solve budget")
	}
}

func (e *Engine) validateRequest(input *engine.OptimizeBuildInput) error {
	vb := errors.NewValidationBuilder()
	if input.Weapon == nil {
		vb.RequiredField("weapon")
		return vb.Build()
	}

	for _, grant := range input.Weapon.Talents {
		if _, ok := e.catalog.TalentByName(grant.TalentName); !ok {
			vb.Fieldf("weapon", "grants unknown talent %q", grant.TalentName)
		}
	}

	seen := make(map[string]bool, len(input.WishList))
	for i, item := range input.WishList {
		if item.TalentName == "" {
			vb.Fieldf("wishList", "entry %d has an empty talent name", i)
			continue
		}
		// Unknown talents reject the whole request: ignoring them would
		// silently change the optimization target.
		if _, ok := e.catalog.TalentByName(item.TalentName); !ok {
			vb.Fieldf("wishList", "unknown talent %q", item.TalentName)
		}
		if seen[item.TalentName] {
			vb.Fieldf("wishList", "duplicate talent %q", item.TalentName)
		}
		seen[item.TalentName] = true
		if item.Weight < 0 || item.Weight > entities.MaxWishWeight {
			vb.Fieldf("wishList", "talent %q weight %d must be between 0 and %d",
				item.TalentName, item.Weight, entities.MaxWishWeight)
		}
		if item.TargetLevel < entities.NoTargetLevel {
			vb.Fieldf("wishList", "talent %q target level %d must be at least %d",
				item.TalentName, item.TargetLevel, entities.NoTargetLevel)
		}
	}

	return vb.Build()
}
