package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/propwiz/internal/cli/formatter"
	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/wizard"
)

const textAreaHeight = 4

// slot is one editable value on a stage: a scalar field, or one column of
// one list entry.
type slot struct {
	block    stageBlock
	entryID  int // list slots only
	position int // 1-based entry position, list slots only
	column   columnDef
}

func (s slot) isList() bool    { return s.block.isList() }
func (s slot) isAxis() bool    { return s.block.Field == domain.FieldStrategicAxis }
func (s slot) multiline() bool { return s.block.Multiline }

func (s slot) label() string {
	switch {
	case !s.isList():
		return s.block.Label
	case len(s.block.Columns) == 1:
		return fmt.Sprintf("%s %d", s.column.Label, s.position)
	default:
		return fmt.Sprintf("%d. %s", s.position, s.column.Label)
	}
}

func (s slot) firstColumn() bool {
	return s.isList() && s.column.Column == s.block.Columns[0].Column
}

func (s slot) lastColumn() bool {
	cols := s.block.Columns
	return s.isList() && s.column.Column == cols[len(cols)-1].Column
}

func (s slot) value(p *domain.Proposal) string {
	if s.isList() {
		v, _ := p.ListField(s.block.List, s.entryID, s.column.Column)
		return v
	}
	v, _ := p.Get(s.block.Field)
	return v
}

// buildSlots flattens a stage layout against the proposal's current lists.
func buildSlots(step wizard.Step, p *domain.Proposal) []slot {
	var out []slot
	for _, b := range stageLayouts[step] {
		if !b.isList() {
			out = append(out, slot{block: b})
			continue
		}
		for i, id := range p.EntryIDs(b.List) {
			for _, c := range b.Columns {
				out = append(out, slot{block: b, entryID: id, position: i + 1, column: c})
			}
		}
	}
	return out
}

// stageView edits the fields and lists of one stage. A single text input
// and a single text area are reused for whichever slot has focus; every
// keystroke is written straight to the session.
type stageView struct {
	state *SharedState
	step  wizard.Step
	slots []slot
	focus int

	input textinput.Model
	area  textarea.Model
	vp    viewport.Model
}

func newStageView(state *SharedState) *stageView {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0

	area := textarea.New()
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetHeight(textAreaHeight)

	v := &stageView{
		state: state,
		step:  state.Session.Step(),
		input: input,
		area:  area,
		vp:    viewport.New(0, 0),
	}
	v.resize()
	v.slots = buildSlots(v.step, state.Session.Proposal())
	v.focusSlot(0)
	return v
}

func (v *stageView) resize() {
	w := v.state.ContentWidth()
	v.input.Width = w - 10
	v.area.SetWidth(w - 10)
	v.vp.Width = w
	v.vp.Height = v.state.ContentHeight()
}

func (v *stageView) current() (slot, bool) {
	if v.focus < 0 || v.focus >= len(v.slots) {
		return slot{}, false
	}
	return v.slots[v.focus], true
}

// focusSlot moves focus to slot i, wrapping at both ends, and loads its
// value into the matching editor.
func (v *stageView) focusSlot(i int) tea.Cmd {
	v.input.Blur()
	v.area.Blur()
	if len(v.slots) == 0 {
		v.focus = 0
		return nil
	}
	v.focus = (i%len(v.slots) + len(v.slots)) % len(v.slots)

	s := v.slots[v.focus]
	if s.isAxis() {
		return nil
	}
	val := s.value(v.state.Session.Proposal())
	if s.multiline() {
		v.area.SetValue(val)
		return v.area.Focus()
	}
	v.input.SetValue(val)
	v.input.CursorEnd()
	return v.input.Focus()
}

func (v *stageView) Init() tea.Cmd {
	if s, ok := v.current(); ok && !s.isAxis() {
		return textinput.Blink
	}
	return nil
}

func (v *stageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil
	case refreshViewMsg:
		v.slots = buildSlots(v.step, v.state.Session.Proposal())
		return v, v.focusSlot(min(v.focus, len(v.slots)-1))
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, v.updateEditor(msg)
}

func (v *stageView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, stageKeys.Advance):
		if v.state.Session.Advance() {
			return v, replaceView(viewForStep(v.state))
		}
		return v, nil
	case key.Matches(msg, stageKeys.Retreat):
		if v.state.Session.Retreat() {
			return v, replaceView(viewForStep(v.state))
		}
		return v, nil
	case key.Matches(msg, stageKeys.Next):
		return v, v.focusSlot(v.focus + 1)
	case key.Matches(msg, stageKeys.Prev):
		return v, v.focusSlot(v.focus - 1)
	case key.Matches(msg, stageKeys.Add):
		return v, v.addEntry()
	case key.Matches(msg, stageKeys.Remove):
		return v, v.removeEntry()
	}

	s, ok := v.current()
	if !ok {
		return v, nil
	}
	if s.isAxis() {
		if key.Matches(msg, stageKeys.Choose) {
			return v, v.openAxisSelect()
		}
		return v, nil
	}
	if msg.Type == tea.KeyEnter && !s.multiline() {
		return v, v.focusSlot(v.focus + 1)
	}

	cmd := v.updateEditor(msg)
	return v, tea.Batch(cmd, v.syncValue())
}

func (v *stageView) updateEditor(msg tea.Msg) tea.Cmd {
	s, ok := v.current()
	if !ok || s.isAxis() {
		return nil
	}
	var cmd tea.Cmd
	if s.multiline() {
		v.area, cmd = v.area.Update(msg)
	} else {
		v.input, cmd = v.input.Update(msg)
	}
	return cmd
}

// syncValue writes the focused editor's text to the session.
func (v *stageView) syncValue() tea.Cmd {
	s, ok := v.current()
	if !ok || s.isAxis() {
		return nil
	}
	val := v.input.Value()
	if s.multiline() {
		val = v.area.Value()
	}
	if val == s.value(v.state.Session.Proposal()) {
		return nil
	}

	var err error
	if s.isList() {
		err = v.state.Session.SetListField(s.block.List, s.entryID, s.column.Column, val)
	} else {
		err = v.state.Session.SetField(s.block.Field, val)
	}
	if err != nil {
		return flashError(err)
	}
	return nil
}

// addEntry appends to the focused list, or to the stage's first list, and
// focuses the new entry.
func (v *stageView) addEntry() tea.Cmd {
	var kind domain.ListKind
	if s, ok := v.current(); ok && s.isList() {
		kind = s.block.List
	} else if k, ok := firstList(v.step); ok {
		kind = k
	} else {
		return nil
	}

	id, err := v.state.Session.AddEntry(kind)
	if err != nil {
		return flashError(err)
	}
	v.slots = buildSlots(v.step, v.state.Session.Proposal())
	for i, s := range v.slots {
		if s.block.List == kind && s.entryID == id {
			return v.focusSlot(i)
		}
	}
	return nil
}

// removeEntry deletes the focused list entry and focuses the entry that
// takes its place.
func (v *stageView) removeEntry() tea.Cmd {
	s, ok := v.current()
	if !ok || !s.isList() {
		return flash(formatter.Dim("Focus a list entry to remove it."))
	}
	if err := v.state.Session.RemoveEntry(s.block.List, s.entryID); err != nil {
		return flashError(err)
	}

	v.slots = buildSlots(v.step, v.state.Session.Proposal())
	pos := min(s.position, len(v.state.Session.Proposal().EntryIDs(s.block.List)))
	for i, sl := range v.slots {
		if sl.block.List == s.block.List && sl.position == pos && sl.firstColumn() {
			return v.focusSlot(i)
		}
	}
	return v.focusSlot(0)
}

func (v *stageView) openAxisSelect() tea.Cmd {
	choice := v.state.Session.Proposal().StrategicAxis
	form := wizardSelectAxis(v.state.Session.Axes(), &choice)
	return startWizardCmd(v.state, "Strategic axis", form, func() tea.Cmd {
		if err := v.state.Session.SetStrategicAxis(choice); err != nil {
			return flashError(err)
		}
		return nil
	})
}

func (v *stageView) View() string {
	content, top, bottom := v.render()
	v.vp.SetContent(content)
	switch {
	case top < v.vp.YOffset:
		v.vp.SetYOffset(top)
	case bottom > v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(bottom - v.vp.Height)
	}
	return v.vp.View()
}

// render returns the stage content and the line range of the focused slot.
func (v *stageView) render() (content string, top, bottom int) {
	var lines []string
	add := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}
	p := v.state.Session.Proposal()

	add(formatter.Header(fmt.Sprintf("%d. %s", int(v.step), v.step.String())))
	add("")

	for i, s := range v.slots {
		if s.isList() && s.position == 1 && s.firstColumn() {
			add(formatter.Bold(s.block.Label) + "  " + formatter.Dim("ctrl+n add · ctrl+x remove"))
		}

		indent := 0
		if s.isList() {
			indent = 2
		}
		focused := i == v.focus
		if focused {
			top = len(lines)
		}
		add(formatter.Indent(formatter.Label(s.label(), focused), indent))
		add(formatter.Indent(v.renderValue(s, p, focused), indent+4))
		if focused {
			bottom = len(lines)
		}
		if !s.isList() || s.lastColumn() {
			add("")
		}
	}

	if v.step == wizard.StepBudget {
		opts := v.state.App.reportOptions().WithDefaults()
		total := opts.Amount(p.TotalCost()) + " " + opts.Currency
		add(formatter.RenderBox("Estimated total", formatter.Bold(total)))
	}
	return strings.Join(lines, "\n"), top, bottom
}

func (v *stageView) renderValue(s slot, p *domain.Proposal, focused bool) string {
	switch {
	case s.isAxis():
		val := s.value(p)
		if val == "" {
			val = formatter.Dim(noAxisLabel)
		}
		if focused {
			val += "  " + formatter.Dim("enter: choose")
		}
		return val
	case focused && s.multiline():
		return v.area.View()
	case focused:
		return v.input.View()
	default:
		return formatter.Placeholder(s.value(p))
	}
}

func (v *stageView) ID() ViewID    { return ViewStage }
func (v *stageView) Title() string { return v.step.String() }

func (v *stageView) ShortHelp() []key.Binding {
	bindings := []key.Binding{stageKeys.Next}
	if v.state.Session.Navigator().CanRetreat() {
		bindings = append(bindings, stageKeys.Retreat)
	}
	bindings = append(bindings, stageKeys.Advance)
	if _, ok := firstList(v.step); ok {
		bindings = append(bindings, stageKeys.Add, stageKeys.Remove)
	}
	if s, ok := v.current(); ok && s.isAxis() {
		bindings = append(bindings, stageKeys.Choose)
	}
	return bindings
}
