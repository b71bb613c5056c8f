package model

// DayAction is a human-friendly label for what the policy did on a simulated
// day. Keep these values stable; they are intended for CSV output.
type DayAction string

const (
	DayActionHold         DayAction = "HOLD"
	DayActionOrder        DayAction = "ORDER"
	DayActionReceive      DayAction = "RECEIVE"
	DayActionReceiveOrder DayAction = "RECEIVE+ORDER"
)

func DayActionFor(receivedUnits int, ordered bool) DayAction {
	switch {
	case receivedUnits > 0 && ordered:
		return DayActionReceiveOrder
	case receivedUnits > 0:
		return DayActionReceive
	case ordered:
		return DayActionOrder
	default:
		return DayActionHold
	}
}
