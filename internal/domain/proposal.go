package domain

import "fmt"

// Objective is one specific objective of the project.
type Objective struct {
	Text string
}

// Task is one timeline entry. Duration is free text ("Months 1-3").
type Task struct {
	Task     string
	Duration string
}

// Member is one team member besides the principal investigator.
type Member struct {
	Name string
	Role string
}

// BudgetLine is one cost entry. Cost is kept as typed and only parsed
// when totals are computed.
type BudgetLine struct {
	Item          string
	Justification string
	Cost          string
}

// Proposal is the aggregate for a research-project submission under
// construction. Every scalar is free text; nothing is validated.
type Proposal struct {
	Title    string
	Acronym  string
	Abstract string
	Keywords string

	StrategicAxis     string
	AxisJustification string
	LiteratureReview  string
	ResearchGap       string

	MainObjective string
	Objectives    List[Objective]
	Methodology   string
	Timeline      List[Task]

	ExpectedOutcomes    string
	SocioEconomicImpact string
	DisseminationPlan   string

	PIName        string
	PIAffiliation string
	PIEmail       string
	Team          List[Member]

	Budget List[BudgetLine]
}

// NewProposal returns the initial state: empty scalars and one empty entry
// per list.
func NewProposal() *Proposal {
	return &Proposal{
		Objectives: NewList[Objective](),
		Timeline:   NewList[Task](),
		Team:       NewList[Member](),
		Budget:     NewList[BudgetLine](),
	}
}

// Clone returns a deep copy of p.
func (p *Proposal) Clone() *Proposal {
	c := *p
	c.Objectives = p.Objectives.Clone()
	c.Timeline = p.Timeline.Clone()
	c.Team = p.Team.Clone()
	c.Budget = p.Budget.Clone()
	return &c
}

// TotalCost sums the parsed cost of every budget line in list order.
func (p *Proposal) TotalCost() float64 {
	total := 0.0
	for _, e := range p.Budget.Entries() {
		total += ParseCost(e.Value.Cost)
	}
	return total
}

// ScalarField names one free-text field of a Proposal.
type ScalarField string

const (
	FieldTitle               ScalarField = "title"
	FieldAcronym             ScalarField = "acronym"
	FieldAbstract            ScalarField = "abstract"
	FieldKeywords            ScalarField = "keywords"
	FieldStrategicAxis       ScalarField = "strategic_axis"
	FieldAxisJustification   ScalarField = "axis_justification"
	FieldLiteratureReview    ScalarField = "literature_review"
	FieldResearchGap         ScalarField = "research_gap"
	FieldMainObjective       ScalarField = "main_objective"
	FieldMethodology         ScalarField = "methodology"
	FieldExpectedOutcomes    ScalarField = "expected_outcomes"
	FieldSocioEconomicImpact ScalarField = "socio_economic_impact"
	FieldDisseminationPlan   ScalarField = "dissemination_plan"
	FieldPIName              ScalarField = "pi_name"
	FieldPIAffiliation       ScalarField = "pi_affiliation"
	FieldPIEmail             ScalarField = "pi_email"
)

func (p *Proposal) scalar(f ScalarField) *string {
	switch f {
	case FieldTitle:
		return &p.Title
	case FieldAcronym:
		return &p.Acronym
	case FieldAbstract:
		return &p.Abstract
	case FieldKeywords:
		return &p.Keywords
	case FieldStrategicAxis:
		return &p.StrategicAxis
	case FieldAxisJustification:
		return &p.AxisJustification
	case FieldLiteratureReview:
		return &p.LiteratureReview
	case FieldResearchGap:
		return &p.ResearchGap
	case FieldMainObjective:
		return &p.MainObjective
	case FieldMethodology:
		return &p.Methodology
	case FieldExpectedOutcomes:
		return &p.ExpectedOutcomes
	case FieldSocioEconomicImpact:
		return &p.SocioEconomicImpact
	case FieldDisseminationPlan:
		return &p.DisseminationPlan
	case FieldPIName:
		return &p.PIName
	case FieldPIAffiliation:
		return &p.PIAffiliation
	case FieldPIEmail:
		return &p.PIEmail
	}
	return nil
}

// Get returns the value of a scalar field.
func (p *Proposal) Get(f ScalarField) (string, error) {
	ptr := p.scalar(f)
	if ptr == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return *ptr, nil
}

// Set replaces the value of a scalar field.
func (p *Proposal) Set(f ScalarField, value string) error {
	ptr := p.scalar(f)
	if ptr == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*ptr = value
	return nil
}
