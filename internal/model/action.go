package model

// Action is the per-hour battery operating mode.
// Keep these values stable; they are part of the JSON response shape.
type Action string

const (
	ActionCharge    Action = "Charge"
	ActionDischarge Action = "Discharge"
)

// ActionFromBit maps a solver decision bit to an action.
// Convention: 1 = charge, 0 = discharge.
func ActionFromBit(bit int8) Action {
	if bit > 0 {
		return ActionCharge
	}
	return ActionDischarge
}
