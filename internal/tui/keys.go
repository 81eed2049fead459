package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextList   key.Binding
	PrevList   key.Binding
	Add        key.Binding
	Toggle     key.Binding
	Remove     key.Binding
	Filter     key.Binding
	FilterAll  key.Binding
	FilterAct  key.Binding
	FilterDone key.Binding
	NewList    key.Binding
	Rename     key.Binding
	RemoveList key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextList:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		PrevList:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev list")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Remove:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove task")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		FilterAll:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterAct:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterDone: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		NewList:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename list")),
		RemoveList: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove list")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.Filter, k.NextList, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Toggle, k.Remove},
		{k.Filter, k.FilterAll, k.FilterAct, k.FilterDone},
		{k.NextList, k.PrevList, k.NewList, k.Rename, k.RemoveList},
		{k.Help, k.Quit},
	}
}
