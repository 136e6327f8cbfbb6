package entities

// Solution is the finalized build returned by one solve. It is
// produced exactly once per solve and never mutated afterwards.
type Solution struct {
	// Pieces maps each armor slot to the chosen piece name. Slots left
	// empty by the solver are absent from the map.
	Pieces map[Slot]string `json:"pieces"`
	// Charm is the chosen charm name, empty if none.
	Charm string `json:"charm"`
	// Weapon is the caller's fixed weapon.
	Weapon string `json:"weapon"`
	// Jewels maps jewel names to the number of inserted copies. Only
	// jewels with at least one copy appear.
	Jewels map[string]int32 `json:"jewels"`
}

// Piece returns the chosen piece for a slot, or false if the slot was
// left empty.
func (s *Solution) Piece(slot Slot) (string, bool) {
	name, ok := s.Pieces[slot]
	return name, ok
}
