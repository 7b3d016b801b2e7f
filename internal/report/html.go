package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alexanderramin/propwiz/internal/domain"
)

// budgetRow is one rendered line of the print-view budget table.
type budgetRow struct {
	Item          string
	Justification string
	Cost          string
}

type printData struct {
	*domain.Proposal
	Heading    string
	Sections   [6]string
	Objectives []string
	Timeline   []domain.Task
	Team       []domain.Member
	Budget     []budgetRow
	Total      string
	Currency   string
}

var printFuncs = template.FuncMap{
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}

var printTemplate = template.Must(template.New("print").Funcs(printFuncs).Parse(`<html><head><title>Project Proposal</title>
<style>body{font-family: sans-serif; line-height: 1.5;} h1,h2,h3{color: #333;} h2{border-bottom: 1px solid #eee; padding-bottom: 5px;} table{width: 100%; border-collapse: collapse;} th,td{border: 1px solid #ddd; padding: 8px; text-align: left;}</style>
</head><body>
<h1>{{.Heading}}</h1>
<section>
<h2>1. {{index .Sections 0}}</h2>
<p><strong>Acronym:</strong> {{.Acronym}}</p>
<p><strong>Keywords:</strong> {{.Keywords}}</p>
<p><strong>Abstract:</strong><br>{{range lines .Abstract}}{{.}}<br>{{end}}</p>
</section>
<section>
<h2>2. {{index .Sections 1}}</h2>
<p><strong>Strategic axis:</strong> {{.StrategicAxis}}</p>
<p><strong>Justification:</strong><br>{{range lines .AxisJustification}}{{.}}<br>{{end}}</p>
<p><strong>State of the art:</strong><br>{{range lines .LiteratureReview}}{{.}}<br>{{end}}</p>
<p><strong>Research problem:</strong><br>{{range lines .ResearchGap}}{{.}}<br>{{end}}</p>
</section>
<section>
<h2>3. {{index .Sections 2}}</h2>
<p><strong>Main objective:</strong><br>{{range lines .MainObjective}}{{.}}<br>{{end}}</p>
<p><strong>Specific objectives:</strong></p>
<ul>{{range .Objectives}}<li>{{.}}</li>{{end}}</ul>
<p><strong>Methodology:</strong><br>{{range lines .Methodology}}{{.}}<br>{{end}}</p>
<p><strong>Timeline:</strong></p>
<ul>{{range .Timeline}}<li>{{.Task}} ({{.Duration}})</li>{{end}}</ul>
</section>
<section>
<h2>4. {{index .Sections 3}}</h2>
<p><strong>Expected outcomes:</strong><br>{{range lines .ExpectedOutcomes}}{{.}}<br>{{end}}</p>
<p><strong>Socio-economic impact:</strong><br>{{range lines .SocioEconomicImpact}}{{.}}<br>{{end}}</p>
<p><strong>Dissemination plan:</strong><br>{{range lines .DisseminationPlan}}{{.}}<br>{{end}}</p>
</section>
<section>
<h2>5. {{index .Sections 4}}</h2>
<p><strong>Principal investigator:</strong> {{.PIName}} ({{.PIAffiliation}}, {{.PIEmail}})</p>
<p><strong>Members:</strong></p>
<ul>{{range .Team}}<li>{{.Name}} - {{.Role}}</li>{{end}}</ul>
</section>
<section>
<h2>6. {{index .Sections 5}}</h2>
<table>
<thead><tr><th>Item</th><th>Justification</th><th>Cost ({{.Currency}})</th></tr></thead>
<tbody>
{{range .Budget}}<tr><td>{{.Item}}</td><td>{{.Justification}}</td><td>{{.Cost}}</td></tr>
{{end}}</tbody>
<tfoot><tr><td colspan="2">TOTAL</td><td>{{.Total}}</td></tr></tfoot>
</table>
</section>
</body></html>
`))

// RenderHTML renders the print view: the proposal under the six section
// headings with a budget table. Amounts use the configured grouping; a
// cost that is not a number is shown as typed.
func RenderHTML(p *domain.Proposal, opts Options) (string, error) {
	opts = opts.WithDefaults()

	data := printData{
		Proposal: p,
		Heading:  p.Title,
		Sections: [6]string{SectionBasics, SectionContext, SectionPlan, SectionImpact, SectionTeam, SectionBudget},
		Total:    opts.Amount(p.TotalCost()),
		Currency: opts.Currency,
	}
	if data.Heading == "" {
		data.Heading = "Project Title"
	}
	for _, e := range p.Objectives.Entries() {
		data.Objectives = append(data.Objectives, e.Value.Text)
	}
	for _, e := range p.Timeline.Entries() {
		data.Timeline = append(data.Timeline, e.Value)
	}
	for _, e := range p.Team.Entries() {
		data.Team = append(data.Team, e.Value)
	}
	for _, e := range p.Budget.Entries() {
		data.Budget = append(data.Budget, budgetRow{
			Item:          e.Value.Item,
			Justification: e.Value.Justification,
			Cost:          budgetCell(e.Value.Cost, opts),
		})
	}

	var b strings.Builder
	if err := printTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering print view: %w", err)
	}
	return b.String(), nil
}

func budgetCell(cost string, opts Options) string {
	if strings.TrimSpace(cost) == "" {
		return opts.Amount(0)
	}
	v, ok := domain.LookupCost(cost)
	if !ok {
		return cost
	}
	return opts.Amount(v)
}
