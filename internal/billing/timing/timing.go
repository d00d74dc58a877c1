// Package timing derives kitchen and service durations from an order's status history.
package timing

import (
	"encoding/json"
	"time"

	"github.com/sangkips/hospitality-pos/internal/domain/enum"
)

// Event is one entry of an order's status history
type Event struct {
	Status enum.OrderStatus
	At     time.Time
}

// State tells how a Duration was obtained
type State string

const (
	Completed   State = "completed"
	InProgress  State = "in_progress"
	Unavailable State = "unavailable"
)

// Duration is a measured segment. Value is zero when State is Unavailable.
type Duration struct {
	State State
	Value time.Duration
}

func (d Duration) String() string {
	switch d.State {
	case Completed:
		return d.Value.String()
	case InProgress:
		return d.Value.String() + " (in progress)"
	default:
		return "unavailable"
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	out := struct {
		State   State    `json:"state"`
		Seconds *float64 `json:"seconds"`
		Display string   `json:"display"`
	}{State: d.State, Display: d.String()}
	if d.State != Unavailable {
		s := d.Value.Seconds()
		out.Seconds = &s
	}
	return json.Marshal(out)
}

// Report holds the four durations of an order
type Report struct {
	Approval Duration `json:"approvalDuration"`
	Prep     Duration `json:"prepDuration"`
	Service  Duration `json:"serviceDuration"`
	Total    Duration `json:"totalDuration"`
}

var (
	startMilestone     = []enum.OrderStatus{enum.OrderStatusPending}
	preparingMilestone = []enum.OrderStatus{enum.OrderStatusPreparing}
	readyMilestone     = []enum.OrderStatus{enum.OrderStatusReadyForPickup, enum.OrderStatusOutForDelivery}
	terminalMilestone  = []enum.OrderStatus{enum.OrderStatusCompleted, enum.OrderStatusCancelled}
)

// Analyze measures history against now. Completed segments pair the earliest
// occurrence of each milestone; an open segment runs from the latest
// occurrence of its start milestone to now. History order is not assumed.
func Analyze(history []Event, now time.Time) Report {
	return Report{
		Approval: measure(history, startMilestone, preparingMilestone, now),
		Prep:     measure(history, preparingMilestone, readyMilestone, now),
		Service:  measure(history, readyMilestone, terminalMilestone, now),
		Total:    measure(history, startMilestone, terminalMilestone, now),
	}
}

func measure(history []Event, from, to []enum.OrderStatus, now time.Time) Duration {
	start, ok := earliest(history, from)
	if !ok {
		return Duration{State: Unavailable}
	}
	if end, ok := earliest(history, to); ok {
		return Duration{State: Completed, Value: clamp(end.Sub(start))}
	}
	last, _ := latest(history, from)
	return Duration{State: InProgress, Value: clamp(now.Sub(last))}
}

func earliest(history []Event, statuses []enum.OrderStatus) (time.Time, bool) {
	var found time.Time
	ok := false
	for _, e := range history {
		if !matches(e.Status, statuses) {
			continue
		}
		if !ok || e.At.Before(found) {
			found, ok = e.At, true
		}
	}
	return found, ok
}

func latest(history []Event, statuses []enum.OrderStatus) (time.Time, bool) {
	var found time.Time
	ok := false
	for _, e := range history {
		if !matches(e.Status, statuses) {
			continue
		}
		if !ok || e.At.After(found) {
			found, ok = e.At, true
		}
	}
	return found, ok
}

func matches(s enum.OrderStatus, statuses []enum.OrderStatus) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
