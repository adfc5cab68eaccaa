package recommend

// RequiresCoreStability reports whether either sway observation is present.
func RequiresCoreStability(trunkSway, hipSway Sway) bool {
	return trunkSway == SwayPresent || hipSway == SwayPresent
}

// ApplyCoreStabilityFilter keeps only ipsilateral-core exercises when any
// sway is present. Otherwise the input is returned as is.
func ApplyCoreStabilityFilter(exercises []Exercise, trunkSway, hipSway Sway) []Exercise {
	if !RequiresCoreStability(trunkSway, hipSway) {
		return exercises
	}
	out := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.CoreIpsi {
			out = append(out, ex)
		}
	}
	return out
}

// Performable reports whether ex can be done in position p. Lying covers
// both supine and side lying.
func (ex Exercise) Performable(p Position) bool {
	switch p {
	case PositionDLStand:
		return ex.Positions.DLStand
	case PositionSplitStand:
		return ex.Positions.SplitStand
	case PositionSLStand:
		return ex.Positions.SLStand
	case PositionQuadruped:
		return ex.Positions.Quadruped
	case PositionLying:
		return ex.Positions.SupineLying || ex.Positions.SideLying
	default:
		return false
	}
}

// ExercisesForPosition returns the catalog entries performable in p, in
// catalog order. Unknown positions match nothing.
func ExercisesForPosition(p Position, exercises []Exercise) []Exercise {
	out := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.Performable(p) {
			out = append(out, ex)
		}
	}
	return out
}
