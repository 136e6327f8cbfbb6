// Package scrape implements the orchestrator that refreshes the stored
// catalog from the kiranico data site.
package scrape

//go:generate mockgen -destination=mock/mock_service.go -package=scrapemock github.com/DSestu/MH-Wilds-Tools/internal/orchestrators/scrape Service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DSestu/MH-Wilds-Tools/internal/clients/kiranico"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
	"github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog"
)

// Service defines the interface for catalog refresh operations
type Service interface {
	// RefreshCatalog fetches the requested dataset sections and replaces
	// them in the stored catalog. The previous catalog stays in place if
	// any fetch or the integrity check fails.
	RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) (*RefreshCatalogOutput, error)
}

// Category names one refreshable section of the catalog.
type Category string

const (
	CategoryTalents Category = "talents"
	CategoryArmors  Category = "armors"
	CategoryCharms  Category = "charms"
	CategoryJewels  Category = "jewels"
	CategoryWeapons Category = "weapons"
)

// AllCategories returns every refreshable category in fetch order.
func AllCategories() []Category {
	return []Category{CategoryTalents, CategoryArmors, CategoryCharms, CategoryJewels, CategoryWeapons}
}

// ParseCategories converts CLI arguments into categories. "all" or an
// empty list selects everything.
func ParseCategories(args []string) ([]Category, error) {
	if len(args) == 0 {
		return AllCategories(), nil
	}

	seen := make(map[Category]bool)
	var cats []Category
	for _, arg := range args {
		if arg == "all" {
			return AllCategories(), nil
		}
		c := Category(arg)
		switch c {
		case CategoryTalents, CategoryArmors, CategoryCharms, CategoryJewels, CategoryWeapons:
			if !seen[c] {
				seen[c] = true
				cats = append(cats, c)
			}
		default:
			return nil, errors.InvalidArgumentf("unknown catalog category %q (want talents, armors, charms, jewels, weapons, or all)", arg)
		}
	}
	return cats, nil
}

// Config holds the dependencies for the scrape orchestrator
type Config struct {
	Kiranico    kiranico.Client
	CatalogRepo catalog.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Kiranico == nil {
		vb.RequiredField("Kiranico")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	kiranico    kiranico.Client
	catalogRepo catalog.Repository
}

// NewOrchestrator creates a new scrape orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		kiranico:    cfg.Kiranico,
		catalogRepo: cfg.CatalogRepo,
	}, nil
}

// RefreshCatalogInput defines the input for refreshing the catalog.
// An empty Categories list refreshes everything.
type RefreshCatalogInput struct {
	Categories []Category
}

// RefreshCatalogOutput defines the output for refreshing the catalog
type RefreshCatalogOutput struct {
	Catalog *entities.Catalog
	SavedAt time.Time
}

func (o *orchestrator) RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) (*RefreshCatalogOutput, error) {
	start := time.Now()

	cats := AllCategories()
	if input != nil && len(input.Categories) > 0 {
		cats = input.Categories
	}

	// A partial refresh replaces sections inside the stored catalog, so
	// start from that; a full refresh starts from scratch either way.
	cat := &entities.Catalog{}
	if len(cats) < len(AllCategories()) {
		stored, err := o.catalogRepo.Get(ctx, catalog.GetInput{})
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.WrapWithCode(err, errors.CodeNotFound,
					"cannot refresh individual categories with no stored catalog; scrape everything first")
			}
			return nil, err
		}
		cat = stored.Catalog
	}

	// The requested sections are independent page trees; fetch them in
	// parallel and fail the whole refresh on the first error.
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range cats {
		switch c {
		case CategoryTalents:
			g.Go(func() error {
				out, err := o.kiranico.ListTalents(gctx, &kiranico.ListTalentsInput{})
				if err != nil {
					return err
				}
				cat.Talents = out.Talents
				return nil
			})
		case CategoryArmors:
			g.Go(func() error {
				out, err := o.kiranico.ListArmorPieces(gctx, &kiranico.ListArmorPiecesInput{})
				if err != nil {
					return err
				}
				cat.ArmorPieces = out.ArmorPieces
				return nil
			})
		case CategoryCharms:
			g.Go(func() error {
				out, err := o.kiranico.ListCharms(gctx, &kiranico.ListCharmsInput{})
				if err != nil {
					return err
				}
				cat.Charms = out.Charms
				return nil
			})
		case CategoryJewels:
			g.Go(func() error {
				out, err := o.kiranico.ListJewels(gctx, &kiranico.ListJewelsInput{})
				if err != nil {
					return err
				}
				cat.Jewels = out.Jewels
				return nil
			})
		case CategoryWeapons:
			g.Go(func() error {
				out, err := o.kiranico.ListWeapons(gctx, &kiranico.ListWeaponsInput{})
				if err != nil {
					return err
				}
				cat.Weapons = out.Weapons
				return nil
			})
		default:
			return nil, errors.InvalidArgumentf("unknown catalog category %q", c)
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Save validates the assembled catalog before storing it.
	saved, err := o.catalogRepo.Save(ctx, catalog.SaveInput{Catalog: cat})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Refreshed catalog",
		"talents", len(cat.Talents),
		"armor_pieces", len(cat.ArmorPieces),
		"charms", len(cat.Charms),
		"jewels", len(cat.Jewels),
		"weapons", len(cat.Weapons),
		"duration", time.Since(start),
	)

	return &RefreshCatalogOutput{Catalog: cat, SavedAt: saved.SavedAt}, nil
}
