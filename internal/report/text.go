// Package report turns a Proposal into exportable documents: the plain-text
// report, the print view (HTML) and Markdown.
//
// Every renderer is a pure function of the proposal and Options.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/propwiz/internal/domain"
)

// Options controls currency and number grouping.
type Options struct {
	Currency     string
	NumberFormat string
}

// DefaultOptions renders amounts as "1.250,5 MAD".
func DefaultOptions() Options {
	return Options{Currency: DefaultCurrency, NumberFormat: DefaultNumberFormat}
}

// WithDefaults fills empty fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	if o.NumberFormat == "" {
		o.NumberFormat = DefaultNumberFormat
	}
	return o
}

// Amount formats v with the configured grouping.
func (o Options) Amount(v float64) string {
	return FormatAmount(v, o.WithDefaults().NumberFormat)
}

// Result is the formatted report and the total it ends with.
type Result struct {
	Text  string
	Total float64
}

// Section titles shared by the text report and the print view.
const (
	SectionBasics  = "Basic Information"
	SectionContext = "Context and Strategic Alignment"
	SectionPlan    = "Objectives and Methodology"
	SectionImpact  = "Impact and Valorisation"
	SectionTeam    = "Project Team"
	SectionBudget  = "Provisional Budget"
)

const reportBanner = "RESEARCH PROJECT PROPOSAL"

// Format renders the proposal as plain text under fixed section headings,
// lists in stored order, and the estimated total at the end. Field text is
// copied verbatim.
func Format(p *domain.Proposal, opts Options) Result {
	opts = opts.WithDefaults()
	total := p.TotalCost()

	var b strings.Builder
	b.WriteString(underline(reportBanner, "="))
	b.WriteString("\n")

	b.WriteString(heading(1, SectionBasics))
	fmt.Fprintf(&b, "Project title: %s\n", p.Title)
	fmt.Fprintf(&b, "Acronym: %s\n", p.Acronym)
	fmt.Fprintf(&b, "Keywords: %s\n\n", p.Keywords)
	fmt.Fprintf(&b, "Abstract:\n%s\n\n", p.Abstract)

	b.WriteString(heading(2, SectionContext))
	fmt.Fprintf(&b, "Strategic axis: %s\n", p.StrategicAxis)
	fmt.Fprintf(&b, "Alignment justification:\n%s\n\n", p.AxisJustification)
	fmt.Fprintf(&b, "State of the art:\n%s\n\n", p.LiteratureReview)
	fmt.Fprintf(&b, "Research problem and gap:\n%s\n\n", p.ResearchGap)

	b.WriteString(heading(3, SectionPlan))
	fmt.Fprintf(&b, "Main objective:\n%s\n\n", p.MainObjective)
	b.WriteString("Specific objectives:\n")
	for i, e := range p.Objectives.Entries() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Value.Text)
	}
	fmt.Fprintf(&b, "\nMethodology:\n%s\n\n", p.Methodology)
	b.WriteString("Timeline:\n")
	for _, e := range p.Timeline.Entries() {
		fmt.Fprintf(&b, "- %s (%s)\n", e.Value.Task, e.Value.Duration)
	}
	b.WriteString("\n")

	b.WriteString(heading(4, SectionImpact))
	fmt.Fprintf(&b, "Expected outcomes:\n%s\n\n", p.ExpectedOutcomes)
	fmt.Fprintf(&b, "Socio-economic impact:\n%s\n\n", p.SocioEconomicImpact)
	fmt.Fprintf(&b, "Dissemination and valorisation plan:\n%s\n\n", p.DisseminationPlan)

	b.WriteString(heading(5, SectionTeam))
	fmt.Fprintf(&b, "Principal investigator:\n- Name: %s\n- Institution: %s\n- Email: %s\n\n",
		p.PIName, p.PIAffiliation, p.PIEmail)
	b.WriteString("Team members:\n")
	for _, e := range p.Team.Entries() {
		fmt.Fprintf(&b, "- %s (%s)\n", e.Value.Name, e.Value.Role)
	}
	b.WriteString("\n")

	b.WriteString(heading(6, SectionBudget))
	for _, e := range p.Budget.Entries() {
		fmt.Fprintf(&b, "- %s: %s %s (Justification: %s)\n",
			e.Value.Item, e.Value.Cost, opts.Currency, e.Value.Justification)
	}
	fmt.Fprintf(&b, "\nESTIMATED TOTAL COST: %s %s\n", opts.Amount(total), opts.Currency)

	return Result{Text: b.String(), Total: total}
}

func heading(n int, title string) string {
	return underline(fmt.Sprintf("%d. %s", n, strings.ToUpper(title)), "-")
}

func underline(text, char string) string {
	return text + "\n" + strings.Repeat(char, utf8.RuneCountInString(text)) + "\n"
}
