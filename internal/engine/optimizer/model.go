package optimizer

import (
	"fmt"
	"math"
	"sort"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/solver"
)

// maxJewelCopies bounds the use count of any single jewel. Gear never
// carries more gem slots than this, so the bound is never binding.
const maxJewelCopies = 30

// build is the request-scoped registry of decision variables. Every
// solve starts from a fresh build; nothing here outlives the call.
type build struct {
	catalog *entities.Catalog
	weapon  *entities.Weapon
	wishes  []entities.WishItem

	m *solver.Model

	// Selection indicators, keyed for extraction.
	armorEquipped map[entities.Slot]map[string]solver.Var
	charmEquipped map[string]solver.Var
	jewelUses     map[string]solver.Var

	// Per-talent contribution variables and the sum of their upper
	// bounds, used to size the accumulation variables.
	contribs     map[string][]solver.Var
	contribUpper map[string]int64

	// Gem slot capacity ledgers. Armor totals are decision-dependent;
	// weapon totals are fixed by the request.
	armorSlotTotal  [entities.MaxGemSlotSize + 1]solver.Var
	weaponSlotTotal [entities.MaxJewelSize + 1]solver.Var

	// finals holds the effective level variable per talent, the single
	// variable the objective and extraction read.
	finals map[string]solver.Var
}

func newBuild(catalog *entities.Catalog, weapon *entities.Weapon, wishes []entities.WishItem) *build {
	return &build{
		catalog:       catalog,
		weapon:        weapon,
		wishes:        wishes,
		m:             solver.NewModel("build"),
		armorEquipped: make(map[entities.Slot]map[string]solver.Var),
		charmEquipped: make(map[string]solver.Var),
		jewelUses:     make(map[string]solver.Var),
		contribs:      make(map[string][]solver.Var),
		contribUpper:  make(map[string]int64),
		finals:        make(map[string]solver.Var),
	}
}

func (b *build) addContribution(v solver.Var, talentName string, upper int64) {
	b.contribs[talentName] = append(b.contribs[talentName], v)
	b.contribUpper[talentName] += upper
}

// addArmorSelections declares one equip boolean per armor piece, ties
// talent contributions and gem-slot contributions to it, and keeps
// each slot exclusive. Pieces are visited in sorted name order so the
// model layout is deterministic.
func (b *build) addArmorSelections() {
	var slotContribs [entities.MaxGemSlotSize + 1][]solver.Var

	for _, slot := range entities.AllSlots() {
		pieces := b.catalog.PiecesForSlot(slot)
		sort.Slice(pieces, func(i, j int) bool { return pieces[i].Name < pieces[j].Name })

		equipped := make(map[string]solver.Var, len(pieces))
		exclusive := make([]solver.Var, 0, len(pieces))
		for _, piece := range pieces {
			eq := b.m.NewBoolVar(fmt.Sprintf("equip_%s_%s", slot, piece.Name))
			equipped[piece.Name] = eq
			exclusive = append(exclusive, eq)

			for _, grant := range piece.Talents {
				lvl := int64(grant.Level)
				v := b.m.NewIntVar(0, lvl, fmt.Sprintf("talent_%s_from_%s", grant.TalentName, piece.Name))
				b.m.AddScaledBool(fmt.Sprintf("grant_%s_%s", piece.Name, grant.TalentName), v, lvl, eq)
				b.addContribution(v, grant.TalentName, lvl)
			}
			for size := 1; size <= entities.MaxGemSlotSize; size++ {
				count := int64(piece.Slots.Count(size))
				if count == 0 {
					continue
				}
				v := b.m.NewIntVar(0, count, fmt.Sprintf("slots%d_from_%s", size, piece.Name))
				b.m.AddScaledBool(fmt.Sprintf("slots%d_%s", size, piece.Name), v, count, eq)
				slotContribs[size] = append(slotContribs[size], v)
			}
		}
		b.armorEquipped[slot] = equipped
		b.m.AddAtMostOne(fmt.Sprintf("one_piece_%s", slot), exclusive...)
	}

	for size := 1; size <= entities.MaxGemSlotSize; size++ {
		var upper int64
		for _, piece := range b.catalog.ArmorPieces {
			upper += int64(piece.Slots.Count(size))
		}
		total := b.m.NewIntVar(0, upper, fmt.Sprintf("armor_slots_size%d", size))
		e := solver.Sum(slotContribs[size]...).Minus(total)
		b.m.AddEq(fmt.Sprintf("armor_slots_size%d_sum", size), e, 0)
		b.armorSlotTotal[size] = total
	}
}

// addCharmSelections mirrors armor selection for the single charm slot.
func (b *build) addCharmSelections() {
	charms := make([]entities.Charm, len(b.catalog.Charms))
	copy(charms, b.catalog.Charms)
	sort.Slice(charms, func(i, j int) bool { return charms[i].Name < charms[j].Name })

	exclusive := make([]solver.Var, 0, len(charms))
	for _, charm := range charms {
		eq := b.m.NewBoolVar(fmt.Sprintf("equip_charm_%s", charm.Name))
		b.charmEquipped[charm.Name] = eq
		exclusive = append(exclusive, eq)

		for _, grant := range charm.Talents {
			lvl := int64(grant.Level)
			v := b.m.NewIntVar(0, lvl, fmt.Sprintf("talent_%s_from_%s", grant.TalentName, charm.Name))
			b.m.AddScaledBool(fmt.Sprintf("grant_%s_%s", charm.Name, grant.TalentName), v, lvl, eq)
			b.addContribution(v, grant.TalentName, lvl)
		}
	}
	b.m.AddAtMostOne("one_charm", exclusive...)
}

// addWeaponContributions fixes the weapon's intrinsic talents and its
// gem-slot capacities as constants. The weapon is not a choice: the
// caller picked it.
func (b *build) addWeaponContributions() {
	for _, grant := range b.weapon.Talents {
		lvl := int64(grant.Level)
		v := b.m.NewIntVar(lvl, lvl, fmt.Sprintf("talent_%s_from_weapon", grant.TalentName))
		b.addContribution(v, grant.TalentName, lvl)
	}
	for size := 1; size <= entities.MaxJewelSize; size++ {
		count := int64(b.weapon.Slots.Count(size))
		b.weaponSlotTotal[size] = b.m.NewIntVar(count, count, fmt.Sprintf("weapon_slots_size%d", size))
	}
}

// addJewelUses declares an integer use count per jewel and ties talent
// contributions to it at level-per-copy rate.
func (b *build) addJewelUses() {
	jewels := make([]entities.Jewel, len(b.catalog.Jewels))
	copy(jewels, b.catalog.Jewels)
	sort.Slice(jewels, func(i, j int) bool { return jewels[i].Name < jewels[j].Name })

	for i := range jewels {
		jewel := &jewels[i]
		uses := b.m.NewIntVar(0, maxJewelCopies, fmt.Sprintf("uses_%s", jewel.Name))
		b.jewelUses[jewel.Name] = uses

		for _, grant := range jewel.Talents {
			lvl := int64(grant.Level)
			total := b.m.NewIntVar(0, maxJewelCopies*lvl, fmt.Sprintf("talent_%s_from_%s", grant.TalentName, jewel.Name))
			e := solver.Sum(total).Plus(uses, -float64(lvl))
			b.m.AddEq(fmt.Sprintf("grant_%s_%s", jewel.Name, grant.TalentName), e, 0)
			b.addContribution(total, grant.TalentName, maxJewelCopies*lvl)
		}
	}
}

// addGemFitConstraints enforces, per host pool, that the chosen jewels
// fit the available gem slots largest-first: a size-s jewel consumes
// one slot of size s or any larger size up to 3, and slots consumed by
// larger jewels are gone. Size-4 armor slots accept size-4 decorations
// only, so they do not enter the fit inequalities.
func (b *build) addGemFitConstraints() {
	usesBySize := map[entities.HostPool][entities.MaxJewelSize + 1][]solver.Var{
		entities.HostPoolArmor:  {},
		entities.HostPoolWeapon: {},
	}
	for i := range b.catalog.Jewels {
		jewel := &b.catalog.Jewels[i]
		pool, err := b.catalog.HostPoolFor(jewel)
		if err != nil {
			// Catalog validation ran at engine construction.
			continue
		}
		sizes := usesBySize[pool]
		sizes[jewel.Size] = append(sizes[jewel.Size], b.jewelUses[jewel.Name])
		usesBySize[pool] = sizes
	}

	for _, pool := range []entities.HostPool{entities.HostPoolArmor, entities.HostPoolWeapon} {
		sizes := usesBySize[pool]
		capacity := b.armorSlotTotal
		if pool == entities.HostPoolWeapon {
			for s := 1; s <= entities.MaxJewelSize; s++ {
				capacity[s] = b.weaponSlotTotal[s]
			}
		}
		// Cascading capacity: jewels of size s draw on slots of size
		// s..3 minus the draw of every larger size.
		for s := entities.MaxJewelSize; s >= 1; s-- {
			e := solver.Expr()
			for slotSize := s; slotSize <= entities.MaxJewelSize; slotSize++ {
				e = e.Plus(capacity[slotSize], 1)
				for _, uses := range sizes[slotSize] {
					e = e.Minus(uses)
				}
			}
			b.m.AddGE(fmt.Sprintf("fit_%s_size%d", pool, s), e, 0)
		}
	}
}

// addTalentAccumulation derives, for each talent with at least one
// contribution source, the raw sum, the level-capped value, and the
// final effective level under the talent's group rule. Wished talents
// with no source in the catalog still get a fixed zero final so the
// objective stays well-defined.
func (b *build) addTalentAccumulation() {
	names := make([]string, 0, len(b.contribs))
	for name := range b.contribs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		talent, _ := b.catalog.TalentByName(name)
		maxLevel := int64(talent.MaxLevel())

		sum := b.m.NewIntVar(0, b.contribUpper[name], fmt.Sprintf("sum_%s", name))
		b.m.AddEq(fmt.Sprintf("sum_%s", name), solver.Sum(b.contribs[name]...).Minus(sum), 0)

		capped := b.m.NewIntVar(0, maxLevel, fmt.Sprintf("capped_%s", name))
		b.m.AddMinEquality(fmt.Sprintf("cap_%s", name), capped, sum, maxLevel)

		switch talent.Group {
		case entities.TalentGroupGroup:
			b.finals[name] = b.addGroupFinal(name, talent, capped, maxLevel)
		case entities.TalentGroupSeries:
			b.finals[name] = b.addSeriesFinal(name, talent, capped, maxLevel)
		default:
			b.finals[name] = capped
		}
	}

	for _, item := range b.wishes {
		if _, ok := b.finals[item.TalentName]; !ok {
			b.finals[item.TalentName] = b.m.NewIntVar(0, 0, fmt.Sprintf("final_%s", item.TalentName))
		}
	}
}

// addGroupFinal models the all-or-nothing rule: below the activation
// threshold the talent confers nothing, at or above it the capped
// value passes through unchanged.
func (b *build) addGroupFinal(name string, talent *entities.Talent, capped solver.Var, maxLevel int64) solver.Var {
	threshold := int64(talent.Levels[0].Level)
	active := b.m.NewBoolVar(fmt.Sprintf("active_%s", name))
	b.m.AddAtLeastIndicator(fmt.Sprintf("active_%s", name), active, capped, threshold)

	final := b.m.NewIntVar(0, maxLevel, fmt.Sprintf("final_%s", name))
	b.m.AddGatedCopy(fmt.Sprintf("final_%s", name), final, capped, active)
	return final
}

// addSeriesFinal models tiered activation: the final level is the
// largest defined threshold not exceeding the capped value. Each
// half-open interval between consecutive thresholds (with sentinels 0
// below and max+1 above) gets a membership boolean; exactly one holds.
func (b *build) addSeriesFinal(name string, talent *entities.Talent, capped solver.Var, maxLevel int64) solver.Var {
	bounds := []int64{0}
	for _, threshold := range talent.Thresholds() {
		bounds = append(bounds, int64(threshold))
	}
	bounds = append(bounds, maxLevel+1)

	e := solver.Expr()
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		atLeast := b.m.NewBoolVar(fmt.Sprintf("tier_%s_%d_ge", name, lo))
		below := b.m.NewBoolVar(fmt.Sprintf("tier_%s_%d_lt", name, lo))
		if lo == 0 {
			b.m.AddEq(fmt.Sprintf("tier_%s_%d_ge_fix", name, lo), solver.Sum(atLeast), 1)
		} else {
			b.m.AddAtLeastIndicator(fmt.Sprintf("tier_%s_%d_ge", name, lo), atLeast, capped, lo)
		}
		b.m.AddBelowIndicator(fmt.Sprintf("tier_%s_%d_lt", name, lo), below, capped, hi)

		in := b.m.NewBoolVar(fmt.Sprintf("tier_%s_%d", name, lo))
		b.m.AddConjunction(fmt.Sprintf("tier_%s_%d", name, lo), in, atLeast, below)
		if lo > 0 {
			e = e.Plus(in, -float64(lo))
		}
	}

	final := b.m.NewIntVar(0, maxLevel, fmt.Sprintf("final_%s", name))
	b.m.AddEq(fmt.Sprintf("final_%s", name), e.Plus(final, 1), 0)
	return final
}

// Objective tiers. Powers of ten keep the goals strictly ordered for
// every weight in range: achievement and target adherence dominate,
// then free gem slots, then total talent levels as the tiebreak.
const (
	tierWish  = 1e9
	tierSlots = 1e3
)

// composeObjective assembles the single maximized expression:
//
//	+ tierWish  * 10^weight * final          per wished talent
//	- tierWish  * 10^weight * |final-target| per wished talent with a target
//	+ tierSlots * 10^size   * free slots     per gem-slot size
//	+ 1         * final                      per talent
func (b *build) composeObjective() {
	obj := solver.Expr()

	for _, item := range b.wishes {
		scale := tierWish * math.Pow10(int(item.Weight))
		final := b.finals[item.TalentName]
		obj = obj.Plus(final, scale)

		if item.TargetLevel == entities.NoTargetLevel {
			continue
		}
		talent, _ := b.catalog.TalentByName(item.TalentName)
		devUpper := int64(talent.MaxLevel()) + int64(item.TargetLevel)
		dev := b.m.NewIntVar(0, devUpper, fmt.Sprintf("dev_%s", item.TalentName))
		b.m.AddAbsFloor(fmt.Sprintf("dev_%s", item.TalentName), dev, final, int64(item.TargetLevel))
		obj = obj.Plus(dev, -scale)
	}

	for size := 1; size <= entities.MaxJewelSize; size++ {
		scale := tierSlots * math.Pow10(size)
		obj = obj.Plus(b.armorSlotTotal[size], scale)
		obj = obj.Plus(b.weaponSlotTotal[size], scale)
	}
	for i := range b.catalog.Jewels {
		jewel := &b.catalog.Jewels[i]
		scale := tierSlots * math.Pow10(int(jewel.Size))
		obj = obj.Plus(b.jewelUses[jewel.Name], -scale)
	}

	names := make([]string, 0, len(b.finals))
	for name := range b.finals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		obj = obj.Plus(b.finals[name], 1)
	}

	b.m.Maximize(obj)
}

// extract reads the assignment back into a Solution. Only read
// indicator and count variables; derived values are recomputed by
// consumers from the catalog.
func (b *build) extract(res *solver.Result) *entities.Solution {
	solution := &entities.Solution{
		Pieces: make(map[entities.Slot]string),
		Weapon: b.weapon.Name,
		Jewels: make(map[string]int32),
	}

	for _, slot := range entities.AllSlots() {
		for name, v := range b.armorEquipped[slot] {
			if res.BoolValue(v) {
				solution.Pieces[slot] = name
				break
			}
		}
	}
	for name, v := range b.charmEquipped {
		if res.BoolValue(v) {
			solution.Charm = name
			break
		}
	}
	for name, v := range b.jewelUses {
		if n := res.Value(v); n > 0 {
			solution.Jewels[name] = int32(n)
		}
	}
	return solution
}
