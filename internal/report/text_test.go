package report

import (
	"strings"
	"testing"

	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Golden_FullProposal(t *testing.T) {
	res := Format(testutil.NewTestProposal(t), DefaultOptions())
	goldenTest(t, "report_full", res.Text)
	assert.InDelta(t, 1250.5, res.Total, 1e-9)
}

func TestFormat_ObjectivesAreNumberedInOrder(t *testing.T) {
	p := domain.NewProposal()
	testutil.FillList(t, p, domain.ListObjectives, []string{"A"}, []string{"B"})

	text := Format(p, DefaultOptions()).Text
	assert.Contains(t, text, "Specific objectives:\n1. A\n2. B\n")
}

func TestFormat_NumberingFollowsPositionNotID(t *testing.T) {
	p := domain.NewProposal()
	testutil.FillList(t, p, domain.ListObjectives, []string{"first"}, []string{"second"}, []string{"third"})
	require.NoError(t, p.RemoveEntry(domain.ListObjectives, 2))

	text := Format(p, DefaultOptions()).Text
	assert.Contains(t, text, "1. first\n2. third\n")
}

func TestFormat_EmptyProposal(t *testing.T) {
	res := Format(domain.NewProposal(), DefaultOptions())

	assert.Equal(t, 0.0, res.Total)
	assert.True(t, strings.HasPrefix(res.Text, "RESEARCH PROJECT PROPOSAL\n=========================\n"))
	assert.Contains(t, res.Text, "Specific objectives:\n1. \n")
	assert.Contains(t, res.Text, "Timeline:\n-  ()\n")
	assert.Contains(t, res.Text, "- :  MAD (Justification: )\n")
	assert.True(t, strings.HasSuffix(res.Text, "ESTIMATED TOTAL COST: 0 MAD\n"))
}

func TestFormat_SectionsInFixedOrder(t *testing.T) {
	text := Format(domain.NewProposal(), DefaultOptions()).Text
	headings := []string{
		"1. BASIC INFORMATION",
		"2. CONTEXT AND STRATEGIC ALIGNMENT",
		"3. OBJECTIVES AND METHODOLOGY",
		"4. IMPACT AND VALORISATION",
		"5. PROJECT TEAM",
		"6. PROVISIONAL BUDGET",
	}
	last := -1
	for _, h := range headings {
		i := strings.Index(text, h)
		require.GreaterOrEqual(t, i, 0, h)
		assert.Greater(t, i, last, h)
		last = i
	}
}

func TestFormat_IsIdempotent(t *testing.T) {
	p := testutil.NewTestProposal(t)
	first := Format(p, DefaultOptions())
	second := Format(p, DefaultOptions())
	assert.Equal(t, first, second)
}

func TestFormat_CustomCurrencyAndGrouping(t *testing.T) {
	p := domain.NewProposal()
	require.NoError(t, p.SetListField(domain.ListBudget, 1, domain.ColCost, "1234567.5"))

	res := Format(p, Options{Currency: "EUR", NumberFormat: "# ###,##"})
	assert.Contains(t, res.Text, "- : 1234567.5 EUR (Justification: )\n")
	assert.Contains(t, res.Text, "ESTIMATED TOTAL COST: 1 234 567,5 EUR\n")
}

func TestFormat_ZeroOptionsUseDefaults(t *testing.T) {
	p := testutil.NewTestProposal(t)
	assert.Equal(t, Format(p, DefaultOptions()), Format(p, Options{}))
}

func TestFormat_TotalBeyondInt64(t *testing.T) {
	p := testutil.NewTestProposal(t, testutil.WithRows(domain.ListBudget, []string{"Dam", "Concrete", "1e19"}))

	res := Format(p, DefaultOptions())
	assert.True(t, strings.HasSuffix(res.Text, "ESTIMATED TOTAL COST: 10.000.000.000.000.000.000 MAD\n"), res.Text)
}

func TestFormat_InfiniteTotal(t *testing.T) {
	p := testutil.NewTestProposal(t, testutil.WithRows(domain.ListBudget,
		[]string{"A", "", "1e308"},
		[]string{"B", "", "1e308"},
	))

	res := Format(p, DefaultOptions())
	assert.Contains(t, res.Text, "ESTIMATED TOTAL COST: ∞ MAD\n")
}
