// Package entities defines the domain types for the MH Wilds catalog
// and for optimization requests and results.
package entities

// TalentGroup classifies how a talent accumulates into an effective level.
type TalentGroup string

// Talent groups
const (
	// TalentGroupWeapon talents come from weapons and weapon jewels;
	// every level counts linearly up to the talent's max.
	TalentGroupWeapon TalentGroup = "Weapon"
	// TalentGroupEquip talents come from armor, charms, and equip jewels;
	// every level counts linearly up to the talent's max.
	TalentGroupEquip TalentGroup = "Equip"
	// TalentGroupGroup talents are all-or-nothing: the summed level must
	// reach the talent's single threshold or the effective level is 0.
	TalentGroupGroup TalentGroup = "Group"
	// TalentGroupSeries talents are tiered: the effective level is the
	// largest threshold not exceeding the summed level.
	TalentGroupSeries TalentGroup = "Series"
)

// Valid reports whether the group is one of the known classifications.
func (g TalentGroup) Valid() bool {
	switch g {
	case TalentGroupWeapon, TalentGroupEquip, TalentGroupGroup, TalentGroupSeries:
		return true
	}
	return false
}

// TalentLevel is one level of a talent with its in-game description.
type TalentLevel struct {
	Level       int32  `json:"level"`
	Description string `json:"description"`
}

// Talent is a named perk with discrete levels. Its maximum level is
// implied by the last entry of Levels, which must be sorted ascending.
type Talent struct {
	Name   string        `json:"name"`
	Group  TalentGroup   `json:"group"`
	Levels []TalentLevel `json:"levels"`
}

// MaxLevel returns the highest declared level of the talent.
func (t *Talent) MaxLevel() int32 {
	if len(t.Levels) == 0 {
		return 0
	}
	return t.Levels[len(t.Levels)-1].Level
}

// Thresholds returns the declared level values in ascending order.
// For Group talents this is the single activation threshold, for Series
// talents the tier boundaries.
func (t *Talent) Thresholds() []int32 {
	out := make([]int32, 0, len(t.Levels))
	for _, lv := range t.Levels {
		out = append(out, lv.Level)
	}
	return out
}

// EffectiveLevel applies the talent's cap and threshold rules to a raw
// summed level. This is the reference arithmetic the optimizer encodes
// as constraints; reporting and tests use it directly.
func (t *Talent) EffectiveLevel(sum int32) int32 {
	capped := sum
	if maxLvl := t.MaxLevel(); capped > maxLvl {
		capped = maxLvl
	}
	if capped < 0 {
		capped = 0
	}

	switch t.Group {
	case TalentGroupGroup:
		if len(t.Levels) == 0 || capped < t.Levels[0].Level {
			return 0
		}
		return capped
	case TalentGroupSeries:
		var effective int32
		for _, threshold := range t.Thresholds() {
			if capped >= threshold {
				effective = threshold
			}
		}
		return effective
	default:
		return capped
	}
}

// TalentGrant is a (talent, level) contribution conferred by a piece of
// gear, a charm, a weapon, or one unit of a jewel.
type TalentGrant struct {
	TalentName string `json:"talent_name"`
	Level      int32  `json:"level"`
}
