package build_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/DSestu/MH-Wilds-Tools/internal/engine"
	enginemock "github.com/DSestu/MH-Wilds-Tools/internal/engine/mock"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
	"github.com/DSestu/MH-Wilds-Tools/internal/orchestrators/build"
	"github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog"
	catalogmock "github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *catalogmock.MockRepository
	mockEngine *enginemock.MockEngine
	service    build.Service
	catalog    *entities.Catalog
	savedAt    time.Time
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = catalogmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)

	s.catalog = &entities.Catalog{
		Talents: []entities.Talent{
			{Name: "Attack Boost", Group: entities.TalentGroupEquip,
				Levels: []entities.TalentLevel{{Level: 1}, {Level: 2}}},
		},
		ArmorPieces: []entities.ArmorPiece{
			{Name: "Hope Helm", Slot: entities.SlotHead,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 2}}},
		},
		Weapons: []entities.Weapon{
			{Name: "Hope Blade"},
		},
	}
	s.savedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	service, err := build.NewOrchestrator(&build.Config{
		CatalogRepo: s.mockRepo,
		EngineFactory: func(cat *entities.Catalog) (engine.Engine, error) {
			s.Equal(s.catalog, cat)
			return s.mockEngine, nil
		},
	})
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectCatalogGet() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), catalog.GetInput{}).
		Return(&catalog.GetOutput{Catalog: s.catalog, SavedAt: s.savedAt}, nil)
}

func (s *OrchestratorTestSuite) TestOptimizeBuild() {
	s.expectCatalogGet()

	solution := &entities.Solution{
		Pieces: map[entities.Slot]string{entities.SlotHead: "Hope Helm"},
		Weapon: "Hope Blade",
		Jewels: map[string]int32{},
	}
	s.mockEngine.EXPECT().
		OptimizeBuild(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.OptimizeBuildInput) (*engine.OptimizeBuildOutput, error) {
			s.Equal("Hope Blade", input.Weapon.Name)
			s.Len(input.WishList, 1)
			return &engine.OptimizeBuildOutput{Solution: solution, Status: engine.SolveStatusOptimal}, nil
		})

	out, err := s.service.OptimizeBuild(s.ctx, &build.OptimizeBuildInput{
		WeaponName: "Hope Blade",
		WishList: []entities.WishItem{
			{TalentName: "Attack Boost", Weight: 3, TargetLevel: entities.NoTargetLevel},
		},
	})
	s.Require().NoError(err)
	s.Equal(solution, out.Solution)
	s.Equal(engine.SolveStatusOptimal, out.Status)
	s.Equal(int32(2), out.Talents["Attack Boost"])
	s.Equal(s.catalog, out.Catalog)
	s.Equal(s.savedAt, out.CatalogSavedAt)
}

func (s *OrchestratorTestSuite) TestOptimizeBuildUnknownWeapon() {
	s.expectCatalogGet()

	_, err := s.service.OptimizeBuild(s.ctx, &build.OptimizeBuildInput{WeaponName: "Rusty Sword"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestOptimizeBuildRequiresWeaponName() {
	_, err := s.service.OptimizeBuild(s.ctx, &build.OptimizeBuildInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestOptimizeBuildNilInput() {
	_, err := s.service.OptimizeBuild(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestOptimizeBuildPropagatesEngineError() {
	s.expectCatalogGet()
	s.mockEngine.EXPECT().
		OptimizeBuild(gomock.Any(), gomock.Any()).
		Return(nil, errors.Infeasible("no build satisfies the constraints"))

	_, err := s.service.OptimizeBuild(s.ctx, &build.OptimizeBuildInput{WeaponName: "Hope Blade"})
	s.Require().Error(err)
	s.True(errors.IsInfeasible(err))
}

func (s *OrchestratorTestSuite) TestOptimizeBuildWithoutStoredCatalog() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), catalog.GetInput{}).
		Return(nil, errors.NotFound("no catalog stored; run a scrape first"))

	_, err := s.service.OptimizeBuild(s.ctx, &build.OptimizeBuildInput{WeaponName: "Hope Blade"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListWeapons() {
	s.expectCatalogGet()

	out, err := s.service.ListWeapons(s.ctx, &build.ListWeaponsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Weapons, 1)
	s.Equal("Hope Blade", out.Weapons[0].Name)
}

func (s *OrchestratorTestSuite) TestListTalents() {
	s.expectCatalogGet()

	out, err := s.service.ListTalents(s.ctx, &build.ListTalentsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Talents, 1)
	s.Equal("Attack Boost", out.Talents[0].Name)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewOrchestratorValidatesConfig(t *testing.T) {
	if _, err := build.NewOrchestrator(&build.Config{}); err == nil {
		t.Fatal("expected error for missing catalog repository")
	}
}
