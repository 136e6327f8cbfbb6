package optimizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DSestu/MH-Wilds-Tools/internal/engine"
	"github.com/DSestu/MH-Wilds-Tools/internal/engine/optimizer"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
)

type OptimizerSuite struct {
	suite.Suite
	catalog *entities.Catalog
	engine  *optimizer.Engine
}

func levels(values ...int32) []entities.TalentLevel {
	out := make([]entities.TalentLevel, len(values))
	for i, v := range values {
		out[i] = entities.TalentLevel{Level: v}
	}
	return out
}

func (s *OptimizerSuite) SetupTest() {
	s.catalog = &entities.Catalog{
		Talents: []entities.Talent{
			{Name: "Attack Boost", Group: entities.TalentGroupEquip, Levels: levels(1, 2, 3, 4, 5)},
			{Name: "Focus", Group: entities.TalentGroupWeapon, Levels: levels(1, 2, 3)},
			{Name: "Guardian's Pulse", Group: entities.TalentGroupGroup, Levels: levels(3)},
			{Name: "Ancient Oath", Group: entities.TalentGroupSeries, Levels: levels(2, 4)},
			{Name: "Windproof", Group: entities.TalentGroupEquip, Levels: levels(1, 2, 3)},
		},
		ArmorPieces: []entities.ArmorPiece{
			{Name: "Hope Helm", Slot: entities.SlotHead,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 2}},
				Slots:   entities.GemSlots{1, 0, 0, 0}},
			{Name: "Chain Helm", Slot: entities.SlotHead,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 1}}},
			{Name: "Ancient Helm", Slot: entities.SlotHead,
				Talents: []entities.TalentGrant{{TalentName: "Ancient Oath", Level: 1}}},
			{Name: "Hope Mail", Slot: entities.SlotChest,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 2}}},
			{Name: "Ancient Mail", Slot: entities.SlotChest,
				Talents: []entities.TalentGrant{{TalentName: "Ancient Oath", Level: 1}}},
			{Name: "Hope Braces", Slot: entities.SlotArms,
				Talents: []entities.TalentGrant{{TalentName: "Guardian's Pulse", Level: 1}}},
			{Name: "Ancient Braces", Slot: entities.SlotArms,
				Talents: []entities.TalentGrant{{TalentName: "Ancient Oath", Level: 1}}},
			{Name: "Hope Coil", Slot: entities.SlotWaist,
				Talents: []entities.TalentGrant{{TalentName: "Guardian's Pulse", Level: 1}}},
			{Name: "Hope Greaves", Slot: entities.SlotLegs,
				Talents: []entities.TalentGrant{{TalentName: "Guardian's Pulse", Level: 1}}},
		},
		Charms: []entities.Charm{
			{Name: "Power Charm", Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 1}}},
			{Name: "Wind Charm", Talents: []entities.TalentGrant{{TalentName: "Windproof", Level: 2}}},
		},
		Weapons: []entities.Weapon{
			{Name: "Hope Blade",
				Talents: []entities.TalentGrant{{TalentName: "Focus", Level: 1}},
				Slots:   entities.GemSlots{1, 0, 0, 0}},
			{Name: "Bare Blade"},
		},
		Jewels: []entities.Jewel{
			{Name: "Attack Jewel", Size: 1,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 1}}},
			{Name: "Focus Jewel", Size: 1,
				Talents: []entities.TalentGrant{{TalentName: "Focus", Level: 1}}},
		},
	}

	eng, err := optimizer.New(&optimizer.Config{Catalog: s.catalog})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *OptimizerSuite) weapon(name string) *entities.Weapon {
	w, ok := s.catalog.WeaponByName(name)
	s.Require().True(ok)
	return w
}

func (s *OptimizerSuite) solve(weaponName string, wishes ...entities.WishItem) (*engine.OptimizeBuildOutput, map[string]int32) {
	out, err := s.engine.OptimizeBuild(context.Background(), &engine.OptimizeBuildInput{
		Weapon:   s.weapon(weaponName),
		WishList: wishes,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().NotNil(out.Solution)

	finals, err := s.catalog.EffectiveLevels(out.Solution)
	s.Require().NoError(err)
	return out, finals
}

func (s *OptimizerSuite) TestEmptyWishListSucceeds() {
	out, _ := s.solve("Hope Blade")
	s.Equal("Hope Blade", out.Solution.Weapon)
	s.Equal(engine.SolveStatusOptimal, out.Status)
}

func (s *OptimizerSuite) TestMaximizesWishedTalent() {
	// Helm 2 + mail 2 + charm 1 hits the cap without any jewels.
	_, finals := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Attack Boost", Weight: 3, TargetLevel: entities.NoTargetLevel,
	})
	s.Equal(int32(5), finals["Attack Boost"])
}

func (s *OptimizerSuite) TestTargetLevelPenalizesOvershoot() {
	_, finals := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Attack Boost", Weight: 3, TargetLevel: 2,
	})
	s.Equal(int32(2), finals["Attack Boost"])
}

func (s *OptimizerSuite) TestSlotExclusivity() {
	out, _ := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Attack Boost", Weight: 3, TargetLevel: entities.NoTargetLevel,
	})
	for slot, name := range out.Solution.Pieces {
		found := false
		for _, p := range s.catalog.PiecesForSlot(slot) {
			if p.Name == name {
				found = true
			}
		}
		s.True(found, "piece %q must belong to slot %q", name, slot)
	}
}

func (s *OptimizerSuite) TestJewelCapacityLimitsWeaponTalent() {
	// One size-1 weapon slot: intrinsic Focus 1 plus at most one jewel.
	_, finals := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Focus", Weight: 3, TargetLevel: entities.NoTargetLevel,
	})
	s.Equal(int32(2), finals["Focus"])
}

func (s *OptimizerSuite) TestWeaponJewelsNeedWeaponSlots() {
	// Bare Blade has no gem slots and no intrinsic talents.
	out, finals := s.solve("Bare Blade", entities.WishItem{
		TalentName: "Focus", Weight: 3, TargetLevel: entities.NoTargetLevel,
	})
	s.Zero(finals["Focus"])
	s.Zero(out.Solution.Jewels["Focus Jewel"])
}

func (s *OptimizerSuite) TestGroupTalentActivates() {
	// Braces, coil and greaves together reach the 3-piece threshold.
	_, finals := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Guardian's Pulse", Weight: 5, TargetLevel: entities.NoTargetLevel,
	})
	s.Equal(int32(3), finals["Guardian's Pulse"])
}

func (s *OptimizerSuite) TestGroupTalentBelowThresholdConfersNothing() {
	s.catalog.ArmorPieces = s.catalog.ArmorPieces[:len(s.catalog.ArmorPieces)-1] // drop Hope Greaves
	eng, err := optimizer.New(&optimizer.Config{Catalog: s.catalog})
	s.Require().NoError(err)
	s.engine = eng

	_, finals := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Guardian's Pulse", Weight: 5, TargetLevel: entities.NoTargetLevel,
	})
	s.Zero(finals["Guardian's Pulse"])
}

func (s *OptimizerSuite) TestSeriesTalentSnapsToTier() {
	// Three Ancient pieces exist, so the count lands between the tier
	// thresholds 2 and 4 and must snap down to 2.
	_, finals := s.solve("Hope Blade", entities.WishItem{
		TalentName: "Ancient Oath", Weight: 5, TargetLevel: entities.NoTargetLevel,
	})
	s.Equal(int32(2), finals["Ancient Oath"])
}

func (s *OptimizerSuite) TestHigherWeightWins() {
	// Guardian's Pulse needs all three Hope slots; Ancient Oath needs
	// the same arms slot. The heavier wish must get it.
	_, finals := s.solve("Hope Blade",
		entities.WishItem{TalentName: "Ancient Oath", Weight: 1, TargetLevel: entities.NoTargetLevel},
		entities.WishItem{TalentName: "Guardian's Pulse", Weight: 4, TargetLevel: entities.NoTargetLevel},
	)
	s.Equal(int32(3), finals["Guardian's Pulse"])
}

func (s *OptimizerSuite) TestDeterministicAcrossSolves() {
	first, _ := s.solve("Hope Blade",
		entities.WishItem{TalentName: "Attack Boost", Weight: 2, TargetLevel: entities.NoTargetLevel},
		entities.WishItem{TalentName: "Windproof", Weight: 1, TargetLevel: entities.NoTargetLevel},
	)
	second, _ := s.solve("Hope Blade",
		entities.WishItem{TalentName: "Attack Boost", Weight: 2, TargetLevel: entities.NoTargetLevel},
		entities.WishItem{TalentName: "Windproof", Weight: 1, TargetLevel: entities.NoTargetLevel},
	)
	s.Equal(first.Solution, second.Solution)
}

func (s *OptimizerSuite) TestRejectsUnknownWishTalent() {
	_, err := s.engine.OptimizeBuild(context.Background(), &engine.OptimizeBuildInput{
		Weapon: s.weapon("Hope Blade"),
		WishList: []entities.WishItem{
			{TalentName: "Does Not Exist", Weight: 1, TargetLevel: entities.NoTargetLevel},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OptimizerSuite) TestRejectsDuplicateWishTalent() {
	_, err := s.engine.OptimizeBuild(context.Background(), &engine.OptimizeBuildInput{
		Weapon: s.weapon("Hope Blade"),
		WishList: []entities.WishItem{
			{TalentName: "Attack Boost", Weight: 1, TargetLevel: entities.NoTargetLevel},
			{TalentName: "Attack Boost", Weight: 2, TargetLevel: entities.NoTargetLevel},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OptimizerSuite) TestRejectsOutOfRangeWeight() {
	_, err := s.engine.OptimizeBuild(context.Background(), &engine.OptimizeBuildInput{
		Weapon: s.weapon("Hope Blade"),
		WishList: []entities.WishItem{
			{TalentName: "Attack Boost", Weight: entities.MaxWishWeight + 1, TargetLevel: entities.NoTargetLevel},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OptimizerSuite) TestRejectsMissingWeapon() {
	_, err := s.engine.OptimizeBuild(context.Background(), &engine.OptimizeBuildInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OptimizerSuite) TestRejectsWeaponWithUnknownTalent() {
	_, err := s.engine.OptimizeBuild(context.Background(), &engine.OptimizeBuildInput{
		Weapon: &entities.Weapon{
			Name:    "Modded Blade",
			Talents: []entities.TalentGrant{{TalentName: "Does Not Exist", Level: 1}},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OptimizerSuite) TestNilInput() {
	_, err := s.engine.OptimizeBuild(context.Background(), nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOptimizerSuite(t *testing.T) {
	suite.Run(t, new(OptimizerSuite))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := optimizer.New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := optimizer.New(&optimizer.Config{}); err == nil {
		t.Fatal("expected error for missing catalog")
	}
	if _, err := optimizer.New(&optimizer.Config{Catalog: &entities.Catalog{
		Talents: []entities.Talent{{Name: "Broken", Group: "nope", Levels: []entities.TalentLevel{{Level: 1}}}},
	}}); err == nil || !errors.IsDataIntegrity(err) {
		t.Fatalf("expected data-integrity error, got %v", err)
	}
}
