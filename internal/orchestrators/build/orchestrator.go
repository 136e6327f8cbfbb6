// Package build implements the orchestrator for optimizing equipment
// builds against the stored catalog.
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/DSestu/MH-Wilds-Tools/internal/orchestrators/build Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/DSestu/MH-Wilds-Tools/internal/engine"
	"github.com/DSestu/MH-Wilds-Tools/internal/engine/optimizer"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
	"github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog"
)

// Service defines the interface for build operations
type Service interface {
	// OptimizeBuild resolves the weapon, runs the optimizer, and
	// reports the chosen gear with its effective talent levels.
	OptimizeBuild(ctx context.Context, input *OptimizeBuildInput) (*OptimizeBuildOutput, error)

	// ListWeapons returns every weapon in the stored catalog.
	ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error)

	// ListTalents returns every talent in the stored catalog.
	ListTalents(ctx context.Context, input *ListTalentsInput) (*ListTalentsOutput, error)
}

// EngineFactory builds an optimization engine for a loaded catalog.
// Injected so tests can substitute the engine without a real solve.
type EngineFactory func(cat *entities.Catalog) (engine.Engine, error)

// Config holds the dependencies for the build orchestrator
type Config struct {
	CatalogRepo catalog.Repository
	// EngineFactory defaults to the optimizer engine.
	EngineFactory EngineFactory
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo   catalog.Repository
	engineFactory EngineFactory
}

// NewOrchestrator creates a new build orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	factory := cfg.EngineFactory
	if factory == nil {
		factory = func(cat *entities.Catalog) (engine.Engine, error) {
			return optimizer.New(&optimizer.Config{Catalog: cat})
		}
	}

	return &orchestrator{
		catalogRepo:   cfg.CatalogRepo,
		engineFactory: factory,
	}, nil
}

// OptimizeBuildInput defines the input for optimizing a build
type OptimizeBuildInput struct {
	// WeaponName must match a catalog weapon exactly.
	WeaponName string
	WishList   []entities.WishItem
}

// OptimizeBuildOutput defines the output for optimizing a build
type OptimizeBuildOutput struct {
	Solution *entities.Solution
	Status   engine.SolveStatus
	// Talents holds the effective level of every talent the chosen
	// build confers, recomputed from the catalog.
	Talents map[string]int32
	// Catalog is the dataset the solve ran against; callers reuse it
	// for rendering instead of re-reading storage.
	Catalog *entities.Catalog
	// CatalogSavedAt is when the catalog backing this solve was stored.
	CatalogSavedAt time.Time
}

func (o *orchestrator) OptimizeBuild(ctx context.Context, input *OptimizeBuildInput) (*OptimizeBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WeaponName == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}

	stored, err := o.catalogRepo.Get(ctx, catalog.GetInput{})
	if err != nil {
		return nil, err
	}
	cat := stored.Catalog

	weapon, ok := cat.WeaponByName(input.WeaponName)
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found in catalog", input.WeaponName)
	}

	eng, err := o.engineFactory(cat)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := eng.OptimizeBuild(ctx, &engine.OptimizeBuildInput{
		Weapon:   weapon,
		WishList: input.WishList,
	})
	if err != nil {
		return nil, err
	}

	talents, err := cat.EffectiveLevels(out.Solution)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Optimized build",
		"weapon", input.WeaponName,
		"wishes", len(input.WishList),
		"status", string(out.Status),
		"duration", time.Since(start),
	)

	return &OptimizeBuildOutput{
		Solution:       out.Solution,
		Status:         out.Status,
		Talents:        talents,
		Catalog:        cat,
		CatalogSavedAt: stored.SavedAt,
	}, nil
}

// ListWeaponsInput defines the input for listing weapons
type ListWeaponsInput struct{}

// ListWeaponsOutput defines the output for listing weapons
type ListWeaponsOutput struct {
	Weapons []entities.Weapon
}

func (o *orchestrator) ListWeapons(ctx context.Context, _ *ListWeaponsInput) (*ListWeaponsOutput, error) {
	stored, err := o.catalogRepo.Get(ctx, catalog.GetInput{})
	if err != nil {
		return nil, err
	}
	return &ListWeaponsOutput{Weapons: stored.Catalog.Weapons}, nil
}

// ListTalentsInput defines the input for listing talents
type ListTalentsInput struct{}

// ListTalentsOutput defines the output for listing talents
type ListTalentsOutput struct {
	Talents []entities.Talent
}

func (o *orchestrator) ListTalents(ctx context.Context, _ *ListTalentsInput) (*ListTalentsOutput, error) {
	stored, err := o.catalogRepo.Get(ctx, catalog.GetInput{})
	if err != nil {
		return nil, err
	}
	return &ListTalentsOutput{Talents: stored.Catalog.Talents}, nil
}
