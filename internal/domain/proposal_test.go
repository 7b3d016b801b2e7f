package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProposal_InitialState(t *testing.T) {
	p := NewProposal()

	assert.Equal(t, "", p.Title)
	assert.Equal(t, "", p.StrategicAxis)
	for _, kind := range []ListKind{ListObjectives, ListTimeline, ListTeam, ListBudget} {
		assert.Equal(t, []int{1}, p.EntryIDs(kind), "list %s", kind)
	}
}

func TestProposal_SetAndGetScalar(t *testing.T) {
	p := NewProposal()
	require.NoError(t, p.Set(FieldTitle, "Solar desalination"))
	require.NoError(t, p.Set(FieldPIEmail, "pi@univ.ma"))

	got, err := p.Get(FieldTitle)
	require.NoError(t, err)
	assert.Equal(t, "Solar desalination", got)
	assert.Equal(t, "pi@univ.ma", p.PIEmail)
}

func TestProposal_SetUnknownField(t *testing.T) {
	p := NewProposal()
	err := p.Set(ScalarField("budget_total"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = p.Get(ScalarField("nope"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestProposal_SetListField(t *testing.T) {
	p := NewProposal()
	id, err := p.AddEntry(ListBudget)
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	require.NoError(t, p.SetListField(ListBudget, id, ColItem, "Spectrometer"))
	require.NoError(t, p.SetListField(ListBudget, id, ColJustification, "Needed for analysis X"))
	require.NoError(t, p.SetListField(ListBudget, id, ColCost, "120000"))

	e, ok := p.Budget.Get(id)
	require.True(t, ok)
	assert.Equal(t, BudgetLine{Item: "Spectrometer", Justification: "Needed for analysis X", Cost: "120000"}, e.Value)

	got, err := p.ListField(ListBudget, id, ColCost)
	require.NoError(t, err)
	assert.Equal(t, "120000", got)
}

func TestProposal_SetListFieldErrors(t *testing.T) {
	p := NewProposal()

	err := p.SetListField(ListTeam, 1, ColCost, "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	err = p.SetListField(ListTeam, 9, ColName, "x")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = p.SetListField(ListKind("partners"), 1, ColName, "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = p.AddEntry(ListKind("partners"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestProposal_RemoveOnlyTimelineEntryRejected(t *testing.T) {
	p := NewProposal()
	require.NoError(t, p.SetListField(ListTimeline, 1, ColTask, "Fieldwork"))

	err := p.RemoveEntry(ListTimeline, 1)
	assert.ErrorIs(t, err, ErrLastEntry)
	require.Equal(t, 1, p.Timeline.Len())
	assert.Equal(t, "Fieldwork", p.Timeline.Entries()[0].Value.Task)
}

func TestProposal_TotalCost(t *testing.T) {
	p := NewProposal()
	costs := []string{"1000", "abc", "", "250.5"}
	require.NoError(t, p.SetListField(ListBudget, 1, ColCost, costs[0]))
	for _, c := range costs[1:] {
		id, err := p.AddEntry(ListBudget)
		require.NoError(t, err)
		require.NoError(t, p.SetListField(ListBudget, id, ColCost, c))
	}

	assert.Equal(t, 1250.5, p.TotalCost())
	// Recomputing yields the same value.
	assert.Equal(t, p.TotalCost(), p.TotalCost())
	// Raw text is preserved.
	assert.Equal(t, "abc", p.Budget.Entries()[1].Value.Cost)
}

func TestProposal_CloneIsDeep(t *testing.T) {
	p := NewProposal()
	p.Title = "Original"
	c := p.Clone()
	c.Title = "Copy"
	_, err := c.AddEntry(ListTeam)
	require.NoError(t, err)
	require.NoError(t, c.SetListField(ListObjectives, 1, ColText, "changed"))

	assert.Equal(t, "Original", p.Title)
	assert.Equal(t, 1, p.Team.Len())
	assert.Equal(t, "", p.Objectives.Entries()[0].Value.Text)
}
