package entities

// HostPool is the category of gear a jewel may be inserted into. The
// pool is derived from the group of the talents the jewel grants, not
// stored on the jewel itself.
type HostPool string

// Host pools
const (
	// HostPoolArmor jewels fit armor gem slots only.
	HostPoolArmor HostPool = "armor"
	// HostPoolWeapon jewels fit weapon gem slots only.
	HostPoolWeapon HostPool = "weapon"
)

// Jewel is a gem inserted into a gear slot. Each inserted unit confers
// its talent grants once. A jewel of size n fits any slot of size >= n
// within its host pool.
type Jewel struct {
	Name    string        `json:"name"`
	Size    int32         `json:"size"`
	Talents []TalentGrant `json:"talents"`
}
