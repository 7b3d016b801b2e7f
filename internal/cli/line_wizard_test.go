package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answers joins one answer per prompt, in the order the stages ask them.
func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var fullAnswers = answers(
	// Basics
	"Water AI", "SIAB", "irrigation, sensors", "Smart irrigation for arid farms.",
	// Context: axis number, then three texts
	"1", "Water scarcity is a national priority.", "Prior work on drip systems.", "No low-cost control loop.",
	// Plan: main objective, objectives until blank, methodology, timeline until blank task
	"Cut water use by 30%", "Build sensors", "Train model", "",
	"Field trials", "Prototype", "Months 1-6", "",
	// Impact
	"A working pilot", "Lower costs for farmers", "Open dataset",
	// Team: PI, then members until blank name
	"Amina B.", "UCA", "amina@example.org", "Youssef K.", "Engineer", "",
	// Budget: item, justification, cost until blank item
	"Sensors", "Hardware", "1000", "Travel", "Site visits", "250.5", "Misc", "Contingency", "tbd", "",
	// Start over?
	"n",
)

func TestLineWizard_FullRun(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(t, app, fullAnswers)
	require.NoError(t, err)

	assert.Contains(t, out, "RESEARCH PROJECT PROPOSAL")
	assert.Contains(t, out, "Project title: Water AI")
	assert.Contains(t, out, "Acronym: SIAB")
	assert.Contains(t, out, "Strategic axis: Water management")
	assert.Contains(t, out, "Specific objectives:\n1. Build sensors\n2. Train model\n")
	assert.Contains(t, out, "- Prototype (Months 1-6)")
	assert.Contains(t, out, "- Youssef K. (Engineer)")
	assert.Contains(t, out, "- Travel: 250.5 MAD (Justification: Site visits)")
	assert.Contains(t, out, "ESTIMATED TOTAL COST: 1.250,5 MAD")
	assert.Contains(t, out, "Start over? [y/N]: ")
	assert.Equal(t, 1, strings.Count(out, "RESEARCH PROJECT PROPOSAL"))
}

func TestLineWizard_ShowsStagesAndAxes(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(t, app, fullAnswers)
	require.NoError(t, err)

	for _, h := range []string{"1/7 BASICS", "2/7 CONTEXT", "3/7 PLAN", "4/7 IMPACT", "5/7 TEAM", "6/7 BUDGET"} {
		assert.Contains(t, out, h)
	}
	assert.NotContains(t, out, "7/7")
	assert.Contains(t, out, "  1) Water management")
	assert.Contains(t, out, "Project title: ")
}

func TestLineWizard_EOFLeavesRestEmpty(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(t, app, "Only a title")
	require.NoError(t, err)

	assert.Contains(t, out, "Project title: Only a title\n")
	assert.Contains(t, out, "Acronym: \n")
	assert.Contains(t, out, "ESTIMATED TOTAL COST: 0 MAD")
	assert.Equal(t, 1, strings.Count(out, "RESEARCH PROJECT PROPOSAL"))
}

func TestLineWizard_AxisByLabelAndRetry(t *testing.T) {
	app, _ := testApp(t)

	in := answers("T", "", "", "", "99", "Health")
	out, err := execute(t, app, in)
	require.NoError(t, err)

	assert.Contains(t, out, "enter a number from 1 to 8")
	assert.Contains(t, out, "Strategic axis: Health")
}

func TestLineWizard_SkipAxis(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(t, app, answers("T", "", "", "", ""))
	require.NoError(t, err)

	assert.Contains(t, out, "Strategic axis: \n")
}

func TestLineWizard_StartOver(t *testing.T) {
	app, _ := testApp(t)

	in := strings.Replace(fullAnswers, "\nn\n", "\ny\n", 1)
	out, err := execute(t, app, in)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "RESEARCH PROJECT PROPOSAL"))
	second := out[strings.LastIndex(out, "RESEARCH PROJECT PROPOSAL"):]
	assert.Contains(t, second, "Project title: \n")
	assert.Contains(t, second, "ESTIMATED TOTAL COST: 0 MAD")
}

func TestLineWizard_ExportFlags(t *testing.T) {
	app, clip := testApp(t)

	out, err := execute(t, app, fullAnswers, "--copy", "--html", "--markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "Copied!")
	assert.Contains(t, clip.text, "Project title: Water AI")

	for _, name := range []string{"siab.html", "siab.md"} {
		path := filepath.Join(app.Config.Export.Dir, name)
		assert.Contains(t, out, "Wrote "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Water AI")
	}
}

func TestLineWizard_ClipboardFailureIsReported(t *testing.T) {
	app, clip := testApp(t)
	clip.err = errors.New("no clipboard utility")

	out, err := execute(t, app, fullAnswers, "--copy")
	require.NoError(t, err)

	assert.Contains(t, out, "no clipboard utility")
	assert.Contains(t, out, "ESTIMATED TOTAL COST")
}

func TestLineWizard_FileWriteFailureStops(t *testing.T) {
	app, _ := testApp(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	app.Config.Export.Dir = filepath.Join(blocker, "exports")
	app.Exporter = nil

	_, err := execute(t, app, fullAnswers, "--html")
	assert.Error(t, err)
}

func TestLineWizard_CRLFInput(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(t, app, strings.ReplaceAll(fullAnswers, "\n", "\r\n"))
	require.NoError(t, err)

	assert.Contains(t, out, "Acronym: SIAB\n")
	assert.Contains(t, out, "Keywords: irrigation, sensors\n")
	assert.Contains(t, out, "Strategic axis: Water management\n")
	assert.Contains(t, out, "Specific objectives:\n1. Build sensors\n2. Train model\n")
	assert.Contains(t, out, "- Institution: UCA\n")
	assert.Contains(t, out, "ESTIMATED TOTAL COST: 1.250,5 MAD")
	assert.Equal(t, 1, strings.Count(out, "RESEARCH PROJECT PROPOSAL"))
}
