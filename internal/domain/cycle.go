package domain

import "time"

// CycleState is the phase of the Cetus day/night rotation.
type CycleState string

const (
	CycleDay   CycleState = "day"
	CycleNight CycleState = "night"
)

// Label returns the Chinese display name of the phase.
func (s CycleState) Label() string {
	switch s {
	case CycleDay:
		return "白天"
	case CycleNight:
		return "黑夜"
	default:
		return string(s)
	}
}

// CetusCycle is one phase of the Plains day/night rotation.
type CetusCycle struct {
	ID         string
	Activation time.Time
	Expiry     time.Time
	IsDay      bool
	State      CycleState
}

// Remaining returns the time until the phase flips, negative for stale data.
func (c CetusCycle) Remaining(now time.Time) time.Duration {
	return c.Expiry.Sub(now)
}
