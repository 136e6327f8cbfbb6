package entities

// NoTargetLevel marks a wish without an explicit level ceiling: the
// optimizer maximizes the talent instead of matching a target.
const NoTargetLevel int32 = -1

// MaxWishWeight bounds the priority weight of a wish. Weights become
// power-of-ten multipliers in the objective; larger values would push
// the combined objective past what the backend's float64 objective can
// represent exactly.
const MaxWishWeight int32 = 5

// WishItem is one prioritized entry of the caller's wish-list.
type WishItem struct {
	// TalentName must exist in the catalog; unknown names reject the
	// whole request before any model is built.
	TalentName string `json:"talent_name"`
	// Weight is the relative priority, 0 to MaxWishWeight. Higher
	// weights dominate lower ones in the objective.
	Weight int32 `json:"weight"`
	// TargetLevel is the exact level to aim for; deviation in either
	// direction is penalized. NoTargetLevel disables the target.
	TargetLevel int32 `json:"target_level"`
}
