// Package testutil builds proposals for tests.
package testutil

import (
	"testing"

	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/stretchr/testify/require"
)

// ProposalOption adjusts a fixture after the defaults are applied.
type ProposalOption func(testing.TB, *domain.Proposal)

// WithField overrides one scalar field.
func WithField(f domain.ScalarField, v string) ProposalOption {
	return func(t testing.TB, p *domain.Proposal) {
		require.NoError(t, p.Set(f, v))
	}
}

// WithRows replaces a list's contents with rows.
func WithRows(kind domain.ListKind, rows ...[]string) ProposalOption {
	return func(t testing.TB, p *domain.Proposal) {
		ids := p.EntryIDs(kind)
		for _, id := range ids[1:] {
			require.NoError(t, p.RemoveEntry(kind, id))
		}
		for _, col := range domain.ListColumns[kind] {
			require.NoError(t, p.SetListField(kind, ids[0], col, ""))
		}
		FillList(t, p, kind, rows...)
	}
}

// NewTestProposal returns a proposal with every field and list filled.
// The budget totals 1250.5 and includes one non-numeric cost.
func NewTestProposal(t testing.TB, opts ...ProposalOption) *domain.Proposal {
	t.Helper()
	p := domain.NewProposal()

	scalars := map[domain.ScalarField]string{
		domain.FieldTitle:               "Smart Irrigation for Arid Basins",
		domain.FieldAcronym:             "SIAB",
		domain.FieldKeywords:            "irrigation, sensors, water",
		domain.FieldAbstract:            "Low-cost soil sensors.\nBasin-scale pilots.",
		domain.FieldStrategicAxis:       "Water management",
		domain.FieldAxisJustification:   "Targets groundwater depletion.",
		domain.FieldLiteratureReview:    "Prior work is plot-scale.",
		domain.FieldResearchGap:         "No basin-scale validation.",
		domain.FieldMainObjective:       "Cut irrigation water use by 20%.",
		domain.FieldMethodology:         "Field trials with control plots.",
		domain.FieldExpectedOutcomes:    "An open sensor design.",
		domain.FieldSocioEconomicImpact: "Lower costs for smallholders.",
		domain.FieldDisseminationPlan:   "Workshops and open data.",
		domain.FieldPIName:              "Amina Idrissi",
		domain.FieldPIAffiliation:       "Université Cadi Ayyad",
		domain.FieldPIEmail:             "a.idrissi@example.org",
	}
	for f, v := range scalars {
		require.NoError(t, p.Set(f, v))
	}

	FillList(t, p, domain.ListObjectives, []string{"Design the sensor"}, []string{"Deploy two pilots"})
	FillList(t, p, domain.ListTimeline, []string{"Prototype", "6 months"}, []string{"Pilots", "12 months"})
	FillList(t, p, domain.ListTeam, []string{"Youssef Benali", "Field engineer"})
	FillList(t, p, domain.ListBudget,
		[]string{"Sensors", "Hardware for pilots", "1000"},
		[]string{"Travel", "Site visits", "250.5"},
		[]string{"Misc", "Contingency", "abc"},
	)

	for _, opt := range opts {
		opt(t, p)
	}
	return p
}

// FillList writes rows into a list in column order. The first row goes
// into the list's last entry; later rows get new entries.
func FillList(t testing.TB, p *domain.Proposal, kind domain.ListKind, rows ...[]string) {
	t.Helper()
	cols := domain.ListColumns[kind]
	for i, row := range rows {
		ids := p.EntryIDs(kind)
		id := ids[len(ids)-1]
		if i > 0 {
			var err error
			id, err = p.AddEntry(kind)
			require.NoError(t, err)
		}
		for c, v := range row {
			require.NoError(t, p.SetListField(kind, id, cols[c], v))
		}
	}
}
