package availability

import "time"

// ActionType identifies a change to the list of available times
type ActionType string

const UpdateTimes ActionType = "UPDATE_TIMES"

type Action struct {
	Type    ActionType `json:"type"`
	Payload []string   `json:"payload"`
}

// Reduce applies an action to the current list of times.
// Unknown actions leave the list untouched.
func Reduce(times []string, action Action) []string {
	switch action.Type {
	case UpdateTimes:
		return action.Payload
	default:
		return times
	}
}

// InitializeTimes returns the times available on the day of now
func InitializeTimes(now time.Time) []string {
	return GenerateSlots(now)
}
