package admin

import (
	"fmt"

	"ecogrocer/models"
)

// Decision is the outcome of moving a role profile to a target status.
type Decision struct {
	Apply  bool // persist the status change
	Notify bool // dispatch an approval/rejection notification
}

// Transition decides what setting a profile to target means given its
// current status. Approve and reject both win over whatever came before
// (last writer wins), but re-entering the status the profile already has is
// a no-op and must not re-send the notification. An unknown or empty
// current status reads as pending.
func Transition(current, target string) (Decision, error) {
	if target != models.StatusApproved && target != models.StatusRejected {
		return Decision{}, fmt.Errorf("invalid target status %q", target)
	}
	if current == "" {
		current = models.StatusPending
	}
	if current == target {
		return Decision{}, nil
	}
	return Decision{Apply: true, Notify: true}, nil
}
