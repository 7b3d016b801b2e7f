package cli

import "github.com/charmbracelet/bubbles/key"

// stageKeyMap holds the bindings of the editing stages.
type stageKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Advance key.Binding
	Retreat key.Binding
	Add     key.Binding
	Remove  key.Binding
	Choose  key.Binding
}

var stageKeys = stageKeyMap{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	Advance: key.NewBinding(key.WithKeys("ctrl+right", "alt+n"), key.WithHelp("alt+n", "next stage")),
	Retreat: key.NewBinding(key.WithKeys("ctrl+left", "alt+p"), key.WithHelp("alt+p", "prev stage")),
	Add:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add entry")),
	Remove:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove entry")),
	Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose axis")),
}

// reviewKeyMap holds the bindings of the Review stage.
type reviewKeyMap struct {
	Copy     key.Binding
	HTML     key.Binding
	Markdown key.Binding
	Restart  key.Binding
	Retreat  key.Binding
	Quit     key.Binding
}

var reviewKeys = reviewKeyMap{
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	HTML:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "print view")),
	Markdown: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "markdown")),
	Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Retreat:  key.NewBinding(key.WithKeys("ctrl+left", "alt+p"), key.WithHelp("alt+p", "back")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}
