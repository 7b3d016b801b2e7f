package domain

import "fmt"

// ListKind names one of the proposal's ordered lists.
type ListKind string

const (
	ListObjectives ListKind = "objectives"
	ListTimeline   ListKind = "timeline"
	ListTeam       ListKind = "team"
	ListBudget     ListKind = "budget"
)

// Column names for list payload fields.
const (
	ColText          = "text"
	ColTask          = "task"
	ColDuration      = "duration"
	ColName          = "name"
	ColRole          = "role"
	ColItem          = "item"
	ColJustification = "justification"
	ColCost          = "cost"
)

// ListColumns maps each list to its payload columns, in display order.
var ListColumns = map[ListKind][]string{
	ListObjectives: {ColText},
	ListTimeline:   {ColTask, ColDuration},
	ListTeam:       {ColName, ColRole},
	ListBudget:     {ColItem, ColJustification, ColCost},
}

// AddEntry appends an empty entry to the named list and returns its ID.
func (p *Proposal) AddEntry(kind ListKind) (int, error) {
	switch kind {
	case ListObjectives:
		return p.Objectives.Add().ID, nil
	case ListTimeline:
		return p.Timeline.Add().ID, nil
	case ListTeam:
		return p.Team.Add().ID, nil
	case ListBudget:
		return p.Budget.Add().ID, nil
	}
	return 0, fmt.Errorf("%w: list %q", ErrUnknownField, kind)
}

// RemoveEntry deletes an entry from the named list.
func (p *Proposal) RemoveEntry(kind ListKind, id int) error {
	switch kind {
	case ListObjectives:
		return p.Objectives.Remove(id)
	case ListTimeline:
		return p.Timeline.Remove(id)
	case ListTeam:
		return p.Team.Remove(id)
	case ListBudget:
		return p.Budget.Remove(id)
	}
	return fmt.Errorf("%w: list %q", ErrUnknownField, kind)
}

// EntryIDs returns the IDs of the named list in order.
func (p *Proposal) EntryIDs(kind ListKind) []int {
	var ids []int
	switch kind {
	case ListObjectives:
		for _, e := range p.Objectives.Entries() {
			ids = append(ids, e.ID)
		}
	case ListTimeline:
		for _, e := range p.Timeline.Entries() {
			ids = append(ids, e.ID)
		}
	case ListTeam:
		for _, e := range p.Team.Entries() {
			ids = append(ids, e.ID)
		}
	case ListBudget:
		for _, e := range p.Budget.Entries() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SetListField replaces one column of one list entry.
func (p *Proposal) SetListField(kind ListKind, id int, column, value string) error {
	if !hasColumn(kind, column) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, kind, column)
	}
	switch kind {
	case ListObjectives:
		return p.Objectives.Update(id, func(o *Objective) { o.Text = value })
	case ListTimeline:
		return p.Timeline.Update(id, func(t *Task) {
			if column == ColTask {
				t.Task = value
			} else {
				t.Duration = value
			}
		})
	case ListTeam:
		return p.Team.Update(id, func(m *Member) {
			if column == ColName {
				m.Name = value
			} else {
				m.Role = value
			}
		})
	case ListBudget:
		return p.Budget.Update(id, func(b *BudgetLine) {
			switch column {
			case ColItem:
				b.Item = value
			case ColJustification:
				b.Justification = value
			default:
				b.Cost = value
			}
		})
	}
	return fmt.Errorf("%w: list %q", ErrUnknownField, kind)
}

// ListField reads one column of one list entry.
func (p *Proposal) ListField(kind ListKind, id int, column string) (string, error) {
	if !hasColumn(kind, column) {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, kind, column)
	}
	switch kind {
	case ListObjectives:
		e, ok := p.Objectives.Get(id)
		if !ok {
			return "", ErrEntryNotFound
		}
		return e.Value.Text, nil
	case ListTimeline:
		e, ok := p.Timeline.Get(id)
		if !ok {
			return "", ErrEntryNotFound
		}
		if column == ColTask {
			return e.Value.Task, nil
		}
		return e.Value.Duration, nil
	case ListTeam:
		e, ok := p.Team.Get(id)
		if !ok {
			return "", ErrEntryNotFound
		}
		if column == ColName {
			return e.Value.Name, nil
		}
		return e.Value.Role, nil
	case ListBudget:
		e, ok := p.Budget.Get(id)
		if !ok {
			return "", ErrEntryNotFound
		}
		switch column {
		case ColItem:
			return e.Value.Item, nil
		case ColJustification:
			return e.Value.Justification, nil
		}
		return e.Value.Cost, nil
	}
	return "", fmt.Errorf("%w: list %q", ErrUnknownField, kind)
}

func hasColumn(kind ListKind, column string) bool {
	for _, c := range ListColumns[kind] {
		if c == column {
			return true
		}
	}
	return false
}
