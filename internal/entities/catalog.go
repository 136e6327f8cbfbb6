package entities

import (
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
)

// Catalog holds the full game dataset. It is loaded once per process,
// validated, and never mutated afterwards; concurrent readers need no
// locking.
type Catalog struct {
	ArmorPieces []ArmorPiece `json:"armor_pieces"`
	Charms      []Charm      `json:"charms"`
	Weapons     []Weapon     `json:"weapons"`
	Jewels      []Jewel      `json:"jewels"`
	Talents     []Talent     `json:"talents"`
}

// TalentByName returns the talent with the given name.
func (c *Catalog) TalentByName(name string) (*Talent, bool) {
	for i := range c.Talents {
		if c.Talents[i].Name == name {
			return &c.Talents[i], true
		}
	}
	return nil, false
}

// WeaponByName returns the weapon with the given name.
func (c *Catalog) WeaponByName(name string) (*Weapon, bool) {
	for i := range c.Weapons {
		if c.Weapons[i].Name == name {
			return &c.Weapons[i], true
		}
	}
	return nil, false
}

// PiecesForSlot returns the armor pieces belonging to the given slot.
func (c *Catalog) PiecesForSlot(slot Slot) []ArmorPiece {
	var out []ArmorPiece
	for _, p := range c.ArmorPieces {
		if p.Slot == slot {
			out = append(out, p)
		}
	}
	return out
}

// HostPoolFor derives the pool a jewel fits into from the groups of the
// talents it grants: a jewel granting any Weapon-group talent belongs to
// the weapon pool, everything else to the armor pool. Validate rejects
// jewels mixing both categories, so after a successful Validate this
// never fails.
func (c *Catalog) HostPoolFor(jewel *Jewel) (HostPool, error) {
	var hasWeapon, hasEquip bool
	for _, grant := range jewel.Talents {
		talent, ok := c.TalentByName(grant.TalentName)
		if !ok {
			return "", errors.DataIntegrityf("jewel %q references unknown talent %q", jewel.Name, grant.TalentName)
		}
		if talent.Group == TalentGroupWeapon {
			hasWeapon = true
		} else {
			hasEquip = true
		}
	}
	if hasWeapon && hasEquip {
		return "", errors.DataIntegrityf("jewel %q mixes weapon and equip talents", jewel.Name)
	}
	if hasWeapon {
		return HostPoolWeapon, nil
	}
	return HostPoolArmor, nil
}

// EffectiveLevels recomputes the final effective level of every talent
// conferred by the given build. The result is independent of how the
// build was produced; consumers use it instead of trusting any solver
// bookkeeping.
func (c *Catalog) EffectiveLevels(s *Solution) (map[string]int32, error) {
	sums := make(map[string]int32)
	accumulate := func(grants []TalentGrant, copies int32) {
		for _, g := range grants {
			sums[g.TalentName] += g.Level * copies
		}
	}

	for slot, name := range s.Pieces {
		found := false
		for i := range c.ArmorPieces {
			if c.ArmorPieces[i].Name == name && c.ArmorPieces[i].Slot == slot {
				accumulate(c.ArmorPieces[i].Talents, 1)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.DataIntegrityf("unknown armor piece %q in slot %q", name, slot)
		}
	}
	if s.Charm != "" {
		found := false
		for i := range c.Charms {
			if c.Charms[i].Name == s.Charm {
				accumulate(c.Charms[i].Talents, 1)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.DataIntegrityf("unknown charm %q", s.Charm)
		}
	}
	if s.Weapon != "" {
		if w, ok := c.WeaponByName(s.Weapon); ok {
			accumulate(w.Talents, 1)
		}
	}
	for name, copies := range s.Jewels {
		found := false
		for i := range c.Jewels {
			if c.Jewels[i].Name == name {
				accumulate(c.Jewels[i].Talents, copies)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.DataIntegrityf("unknown jewel %q", name)
		}
	}

	finals := make(map[string]int32, len(sums))
	for name, sum := range sums {
		talent, ok := c.TalentByName(name)
		if !ok {
			return nil, errors.DataIntegrityf("unknown talent %q", name)
		}
		if final := talent.EffectiveLevel(sum); final > 0 {
			finals[name] = final
		}
	}
	return finals, nil
}

// Validate checks the catalog for internal consistency. An inconsistent
// catalog must never reach model building; initialization aborts instead.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.DataIntegrity("catalog is nil")
	}

	talentNames := make(map[string]bool, len(c.Talents))
	for i := range c.Talents {
		t := &c.Talents[i]
		if t.Name == "" {
			return errors.DataIntegrity("talent with empty name")
		}
		if talentNames[t.Name] {
			return errors.DataIntegrityf("duplicate talent %q", t.Name)
		}
		talentNames[t.Name] = true
		if !t.Group.Valid() {
			return errors.DataIntegrityf("talent %q has unknown group %q", t.Name, t.Group)
		}
		if len(t.Levels) == 0 {
			return errors.DataIntegrityf("talent %q has no levels", t.Name)
		}
		var prev int32
		for _, lv := range t.Levels {
			if lv.Level <= prev {
				return errors.DataIntegrityf("talent %q levels are not strictly increasing", t.Name)
			}
			prev = lv.Level
		}
	}

	checkGrants := func(owner string, grants []TalentGrant) error {
		for _, g := range grants {
			if !talentNames[g.TalentName] {
				return errors.DataIntegrityf("%s references unknown talent %q", owner, g.TalentName)
			}
			if g.Level < 1 {
				return errors.DataIntegrityf("%s grants talent %q at invalid level %d", owner, g.TalentName, g.Level)
			}
		}
		return nil
	}

	pieceNames := make(map[string]bool, len(c.ArmorPieces))
	for i := range c.ArmorPieces {
		p := &c.ArmorPieces[i]
		if p.Name == "" {
			return errors.DataIntegrity("armor piece with empty name")
		}
		if pieceNames[p.Name] {
			return errors.DataIntegrityf("duplicate armor piece %q", p.Name)
		}
		pieceNames[p.Name] = true
		if !p.Slot.Valid() {
			return errors.DataIntegrityf("armor piece %q has unknown slot %q", p.Name, p.Slot)
		}
		if err := checkGrants("armor piece "+p.Name, p.Talents); err != nil {
			return err
		}
	}

	charmNames := make(map[string]bool, len(c.Charms))
	for i := range c.Charms {
		ch := &c.Charms[i]
		if ch.Name == "" {
			return errors.DataIntegrity("charm with empty name")
		}
		if charmNames[ch.Name] {
			return errors.DataIntegrityf("duplicate charm %q", ch.Name)
		}
		charmNames[ch.Name] = true
		if err := checkGrants("charm "+ch.Name, ch.Talents); err != nil {
			return err
		}
	}

	weaponNames := make(map[string]bool, len(c.Weapons))
	for i := range c.Weapons {
		w := &c.Weapons[i]
		if w.Name == "" {
			return errors.DataIntegrity("weapon with empty name")
		}
		if weaponNames[w.Name] {
			return errors.DataIntegrityf("duplicate weapon %q", w.Name)
		}
		weaponNames[w.Name] = true
		if w.Slots.Count(4) != 0 {
			return errors.DataIntegrityf("weapon %q has a size-4 gem slot", w.Name)
		}
		if err := checkGrants("weapon "+w.Name, w.Talents); err != nil {
			return err
		}
	}

	jewelNames := make(map[string]bool, len(c.Jewels))
	for i := range c.Jewels {
		j := &c.Jewels[i]
		if j.Name == "" {
			return errors.DataIntegrity("jewel with empty name")
		}
		if jewelNames[j.Name] {
			return errors.DataIntegrityf("duplicate jewel %q", j.Name)
		}
		jewelNames[j.Name] = true
		if j.Size < 1 || j.Size > MaxJewelSize {
			return errors.DataIntegrityf("jewel %q has invalid size %d", j.Name, j.Size)
		}
		if len(j.Talents) == 0 {
			return errors.DataIntegrityf("jewel %q grants no talents", j.Name)
		}
		if err := checkGrants("jewel "+j.Name, j.Talents); err != nil {
			return err
		}
		if _, err := c.HostPoolFor(j); err != nil {
			return err
		}
	}

	return nil
}
