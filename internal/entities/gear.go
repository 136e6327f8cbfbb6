package entities

// Slot identifies one of the five armor slots.
type Slot string

// Armor slots
const (
	SlotHead  Slot = "head"
	SlotChest Slot = "chest"
	SlotArms  Slot = "arms"
	SlotWaist Slot = "waist"
	SlotLegs  Slot = "legs"
)

// AllSlots returns the armor slots in display order.
func AllSlots() []Slot {
	return []Slot{SlotHead, SlotChest, SlotArms, SlotWaist, SlotLegs}
}

// Valid reports whether the slot is one of the five armor slots.
func (s Slot) Valid() bool {
	switch s {
	case SlotHead, SlotChest, SlotArms, SlotWaist, SlotLegs:
		return true
	}
	return false
}

// MaxGemSlotSize is the largest gem slot size found on gear. Armor
// carries sizes 1-4; weapons only 1-3. Jewels themselves only exist in
// sizes 1-3.
const MaxGemSlotSize = 4

// MaxJewelSize is the largest jewel size.
const MaxJewelSize = 3

// GemSlots counts the gem slots of a piece of gear by size class.
// Index i holds the number of slots of size i+1.
type GemSlots [MaxGemSlotSize]int32

// Count returns the number of slots of the given size (1-based).
func (g GemSlots) Count(size int) int32 {
	if size < 1 || size > MaxGemSlotSize {
		return 0
	}
	return g[size-1]
}

// Total returns the total number of gem slots of any size.
func (g GemSlots) Total() int32 {
	var total int32
	for _, n := range g {
		total += n
	}
	return total
}

// ArmorPiece is one equippable armor piece, keyed by name.
type ArmorPiece struct {
	Name    string        `json:"name"`
	Slot    Slot          `json:"slot"`
	Talents []TalentGrant `json:"talents"`
	Slots   GemSlots      `json:"gem_slots"`
}

// Charm is an equippable charm. Charms confer talents but carry no gem
// slots.
type Charm struct {
	Name    string        `json:"name"`
	Talents []TalentGrant `json:"talents"`
}

// Weapon is a weapon record. Its talent levels are intrinsic, and its
// gem slots (sizes 1-3 only) form the weapon jewel pool.
type Weapon struct {
	Name    string        `json:"name"`
	Talents []TalentGrant `json:"talents"`
	Slots   GemSlots      `json:"gem_slots"`
}
