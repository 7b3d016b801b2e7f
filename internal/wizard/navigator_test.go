package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_InitialStep(t *testing.T) {
	var n Navigator
	assert.Equal(t, StepBasics, n.Current())
	assert.False(t, n.CanRetreat())
	assert.True(t, n.CanAdvance())
	assert.False(t, n.CanRestart())
}

func TestNavigator_RetreatAtFirstIsNoop(t *testing.T) {
	var n Navigator
	assert.False(t, n.Retreat())
	assert.Equal(t, StepBasics, n.Current())
}

func TestNavigator_AdvanceAtLastIsNoop(t *testing.T) {
	var n Navigator
	for n.Advance() {
	}
	assert.Equal(t, StepReview, n.Current())
	assert.False(t, n.Advance())
	assert.Equal(t, StepReview, n.Current())
	assert.True(t, n.CanRestart())
}

func TestNavigator_AdvanceThenRetreatFromInterior(t *testing.T) {
	for start := StepContext; start < StepReview; start++ {
		n := Navigator{step: start}
		assert.True(t, n.Advance())
		assert.True(t, n.Retreat())
		assert.Equal(t, start, n.Current(), "from %s", start)
	}
}

func TestNavigator_VisitsEveryStageInOrder(t *testing.T) {
	var n Navigator
	var visited []Step
	visited = append(visited, n.Current())
	for n.Advance() {
		visited = append(visited, n.Current())
	}
	assert.Equal(t, Steps(), visited)
}

func TestNavigator_Restart(t *testing.T) {
	n := Navigator{step: StepReview}
	assert.True(t, n.Restart())
	assert.Equal(t, StepBasics, n.Current())
	assert.False(t, n.Restart())
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "Basics", StepBasics.String())
	assert.Equal(t, "Review", StepReview.String())
	assert.Equal(t, "Step(9)", Step(9).String())
}
