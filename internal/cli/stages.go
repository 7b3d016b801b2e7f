package cli

import (
	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/wizard"
)

// columnDef labels one column of a list entry.
type columnDef struct {
	Column string
	Label  string
}

// stageBlock is one field or one list on a stage. Exactly one of Field and
// List is set.
type stageBlock struct {
	Field     domain.ScalarField
	List      domain.ListKind
	Label     string
	Multiline bool
	Columns   []columnDef
}

func (b stageBlock) isList() bool { return b.List != "" }

func scalarBlock(f domain.ScalarField, label string) stageBlock {
	return stageBlock{Field: f, Label: label}
}

func textBlock(f domain.ScalarField, label string) stageBlock {
	return stageBlock{Field: f, Label: label, Multiline: true}
}

func listBlock(kind domain.ListKind, label string, cols ...columnDef) stageBlock {
	return stageBlock{List: kind, Label: label, Columns: cols}
}

// stageLayouts lists the blocks of every editable stage in display order.
// The Review stage has no fields.
var stageLayouts = map[wizard.Step][]stageBlock{
	wizard.StepBasics: {
		scalarBlock(domain.FieldTitle, "Project title"),
		scalarBlock(domain.FieldAcronym, "Acronym"),
		scalarBlock(domain.FieldKeywords, "Keywords"),
		textBlock(domain.FieldAbstract, "Abstract"),
	},
	wizard.StepContext: {
		scalarBlock(domain.FieldStrategicAxis, "Strategic axis"),
		textBlock(domain.FieldAxisJustification, "Alignment justification"),
		textBlock(domain.FieldLiteratureReview, "State of the art"),
		textBlock(domain.FieldResearchGap, "Research problem and gap"),
	},
	wizard.StepPlan: {
		textBlock(domain.FieldMainObjective, "Main objective"),
		listBlock(domain.ListObjectives, "Specific objectives",
			columnDef{domain.ColText, "Objective"}),
		textBlock(domain.FieldMethodology, "Methodology"),
		listBlock(domain.ListTimeline, "Timeline",
			columnDef{domain.ColTask, "Task"},
			columnDef{domain.ColDuration, "Duration"}),
	},
	wizard.StepImpact: {
		textBlock(domain.FieldExpectedOutcomes, "Expected outcomes"),
		textBlock(domain.FieldSocioEconomicImpact, "Socio-economic impact"),
		textBlock(domain.FieldDisseminationPlan, "Dissemination and valorisation plan"),
	},
	wizard.StepTeam: {
		scalarBlock(domain.FieldPIName, "Principal investigator"),
		scalarBlock(domain.FieldPIAffiliation, "Institution"),
		scalarBlock(domain.FieldPIEmail, "Email"),
		listBlock(domain.ListTeam, "Team members",
			columnDef{domain.ColName, "Name"},
			columnDef{domain.ColRole, "Role"}),
	},
	wizard.StepBudget: {
		listBlock(domain.ListBudget, "Budget lines",
			columnDef{domain.ColItem, "Item"},
			columnDef{domain.ColJustification, "Justification"},
			columnDef{domain.ColCost, "Cost"}),
	},
}

// firstList returns the first list on a stage.
func firstList(step wizard.Step) (domain.ListKind, bool) {
	for _, b := range stageLayouts[step] {
		if b.isList() {
			return b.List, true
		}
	}
	return "", false
}

// stepTitles returns the stage titles in order, for the stepper.
func stepTitles() []string {
	steps := wizard.Steps()
	titles := make([]string, len(steps))
	for i, s := range steps {
		titles[i] = s.String()
	}
	return titles
}
