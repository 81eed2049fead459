package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todolists/internal/model"
)

// taskItem adapts model.Task to bubbles/list.Item
type taskItem struct {
	model.Task
}

func (i taskItem) FilterValue() string { return i.Title }

// single-line rows: "> ☑ Bread"
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	box, text := mutedStyle.Render(boxUnchecked), it.Title
	if it.Done {
		box, text = successStyle.Render(boxChecked), doneStyle.Render(it.Title)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
