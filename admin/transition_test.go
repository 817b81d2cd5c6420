package admin

import (
	"testing"

	"ecogrocer/models"
)

func TestTransitionFromPending(t *testing.T) {
	for _, target := range []string{models.StatusApproved, models.StatusRejected} {
		d, err := Transition(models.StatusPending, target)
		if err != nil {
			t.Fatalf("Transition(pending, %s): %v", target, err)
		}
		if !d.Apply || !d.Notify {
			t.Errorf("Transition(pending, %s) = %+v, want apply and notify", target, d)
		}
	}
}

func TestTransitionRepeatIsNoOp(t *testing.T) {
	d, err := Transition(models.StatusApproved, models.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	if d.Apply || d.Notify {
		t.Errorf("re-approving an approved profile = %+v, want no-op", d)
	}
}

func TestTransitionLastWriteWins(t *testing.T) {
	// approve then reject: reject applies and notifies
	d, err := Transition(models.StatusApproved, models.StatusRejected)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Apply || !d.Notify {
		t.Errorf("Transition(approved, rejected) = %+v, want apply and notify", d)
	}
}

func TestTransitionEmptyCurrentReadsAsPending(t *testing.T) {
	d, err := Transition("", models.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Apply || !d.Notify {
		t.Errorf("Transition(\"\", approved) = %+v, want apply and notify", d)
	}
}

func TestTransitionInvalidTarget(t *testing.T) {
	if _, err := Transition(models.StatusPending, "archived"); err == nil {
		t.Error("expected error for invalid target status")
	}
	if _, err := Transition(models.StatusPending, models.StatusPending); err == nil {
		t.Error("pending is not a valid target status")
	}
}
