package wizard

import "fmt"

// Step is one stage of the proposal wizard, numbered from 1.
type Step int

const (
	StepBasics Step = iota + 1
	StepContext
	StepPlan
	StepImpact
	StepTeam
	StepBudget
	StepReview
)

// FirstStep and LastStep bound the stage sequence.
const (
	FirstStep = StepBasics
	LastStep  = StepReview
)

var stepTitles = map[Step]string{
	StepBasics:  "Basics",
	StepContext: "Context",
	StepPlan:    "Plan",
	StepImpact:  "Impact",
	StepTeam:    "Team",
	StepBudget:  "Budget",
	StepReview:  "Review",
}

// String returns the stage title.
func (s Step) String() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Steps returns every stage in order.
func Steps() []Step {
	out := make([]Step, 0, int(LastStep))
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, s)
	}
	return out
}

// Navigator tracks the current stage. The zero value starts at StepBasics.
type Navigator struct {
	step Step
}

// Current returns the active stage.
func (n Navigator) Current() Step {
	if n.step < FirstStep {
		return FirstStep
	}
	return n.step
}

func (n Navigator) CanAdvance() bool { return n.Current() < LastStep }
func (n Navigator) CanRetreat() bool { return n.Current() > FirstStep }

// CanRestart reports whether restart is offered, which is only on Review.
func (n Navigator) CanRestart() bool { return n.Current() == LastStep }

// Advance moves to the next stage. It is a no-op on the last stage.
func (n *Navigator) Advance() bool {
	if !n.CanAdvance() {
		return false
	}
	n.step = n.Current() + 1
	return true
}

// Retreat moves to the previous stage. It is a no-op on the first stage.
func (n *Navigator) Retreat() bool {
	if !n.CanRetreat() {
		return false
	}
	n.step = n.Current() - 1
	return true
}

// Restart returns to the first stage unconditionally and reports whether
// the stage changed.
func (n *Navigator) Restart() bool {
	changed := n.Current() != FirstStep
	n.step = FirstStep
	return changed
}
