// Package tui is the interactive board. It never mutates state itself:
// every key that changes something calls a store command and re-renders
// from the snapshot that command returns.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolists/internal/model"
	"github.com/Makepad-fr/todolists/internal/store"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddTask
	modeNewList
	modeRenameList
	modeConfirmRemove
)

// Model implements tea.Model.
type Model struct {
	store  *store.Store
	snap   store.Snapshot
	active int // index into snap.Lists

	list  list.Model
	input textinput.Model
	help  help.Model
	keys  keyMap

	mode     mode
	inputErr string // last rejected submit, cleared on the next keystroke
	status   string

	width, height int
	logger        *log.Logger
}

// New builds a board over s. A nil logger discards.
func New(s *store.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.PaginationStyle = helpStyle
	l.Styles.NoItems = mutedStyle.Padding(0, 2)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store:  s,
		list:   l,
		input:  ti,
		help:   help.New(),
		keys:   defaultKeys(),
		logger: logger,
		width:  80,
		height: 24,
	}
	m.resize()
	m.apply(s.Snapshot())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAddTask, modeNewList, modeRenameList:
			return m.updateInput(msg)
		case modeConfirmRemove:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	cur, hasList := m.current()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.NewList):
		cmd := m.startInput(modeNewList, "", "New list title...")
		return m, cmd
	}

	if !hasList {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextList):
		m.focus(m.active + 1)
	case key.Matches(msg, m.keys.PrevList):
		m.focus(m.active - 1)
	case key.Matches(msg, m.keys.Add):
		cmd := m.startInput(modeAddTask, "", "New task title...")
		return m, cmd
	case key.Matches(msg, m.keys.Rename):
		cmd := m.startInput(modeRenameList, cur.Title, "List title...")
		return m, cmd
	case key.Matches(msg, m.keys.RemoveList):
		m.mode = modeConfirmRemove
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.apply(m.store.SetTaskStatus(cur.ID, t.ID, !t.Done))
		}
	case key.Matches(msg, m.keys.Remove):
		if t, ok := m.selected(); ok {
			m.apply(m.store.RemoveTask(cur.ID, t.ID))
			m.status = "removed " + t.Title
		}
	case key.Matches(msg, m.keys.Filter):
		m.setFilter(cur.ID, cur.Filter.Next())
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(cur.ID, model.FilterAll)
	case key.Matches(msg, m.keys.FilterAct):
		m.setFilter(cur.ID, model.FilterActive)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(cur.ID, model.FilterCompleted)
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopInput()
		return m, nil
	case tea.KeyEnter:
		m.submit()
		return m, nil
	}
	m.inputErr = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	cur, ok := m.current()
	if !ok || strings.ToLower(msg.String()) != "y" {
		return m, nil
	}
	m.apply(m.store.RemoveList(cur.ID))
	m.status = "removed list " + cur.Title
	return m, nil
}

// submit sends the input to the store. The field is cleared either way;
// on rejection the mode stays open and the reason is shown.
func (m *Model) submit() {
	value := m.input.Value()
	cur, _ := m.current()

	var (
		snap store.Snapshot
		err  error
	)
	switch m.mode {
	case modeAddTask:
		_, snap, err = m.store.AddTask(cur.ID, value)
	case modeNewList:
		_, snap, err = m.store.CreateList(value)
	case modeRenameList:
		snap, err = m.store.RenameList(cur.ID, value)
	}
	if err != nil {
		m.inputErr = inputError(err)
		m.logger.Debug("input rejected", "mode", m.mode, "err", err)
		// An over-long title stays in the field for editing.
		if !errors.Is(err, store.ErrTitleTooLong) {
			m.input.SetValue("")
		}
		return
	}
	m.apply(snap)
	if m.mode == modeNewList {
		m.focus(len(m.snap.Lists) - 1)
	}
	m.stopInput()
}

func inputError(err error) string {
	switch {
	case errors.Is(err, store.ErrTitleRequired), errors.Is(err, store.ErrListTitleRequired):
		return "Title is required"
	case errors.Is(err, store.ErrTitleTooLong):
		return "Task title is too long"
	case errors.Is(err, store.ErrNotFound):
		return "List no longer exists"
	}
	return err.Error()
}

func (m *Model) setFilter(listID string, f model.Filter) {
	snap, err := m.store.SetFilter(listID, f)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.apply(snap)
	m.list.Select(0)
}

func (m *Model) startInput(md mode, value, placeholder string) tea.Cmd {
	m.mode = md
	m.inputErr = ""
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.resize()
	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeBrowse
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

// apply makes snap the rendered state.
func (m *Model) apply(snap store.Snapshot) {
	m.snap = snap
	if m.active >= len(snap.Lists) {
		m.active = len(snap.Lists) - 1
	}
	if m.active < 0 {
		m.active = 0
	}

	var items []list.Item
	if cur, ok := m.current(); ok {
		for _, t := range snap.Filtered(cur.ID) {
			items = append(items, taskItem{Task: t})
		}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// focus moves to list i, wrapping around.
func (m *Model) focus(i int) {
	n := len(m.snap.Lists)
	if n == 0 {
		return
	}
	m.active = ((i % n) + n) % n
	m.list.Select(0)
	m.apply(m.snap)
}

func (m Model) current() (model.Todolist, bool) {
	if m.active < 0 || m.active >= len(m.snap.Lists) {
		return model.Todolist{}, false
	}
	return m.snap.Lists[m.active], true
}

func (m Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.Task, true
}

// chrome is the number of lines around the task list.
func (m Model) chrome() int {
	h := 8 // frame, tabs, header, filter bar, status, help
	if m.help.ShowAll {
		h += 4
	}
	if m.mode != modeBrowse {
		h += 4
	}
	return h
}

func (m *Model) resize() {
	h := m.height - m.chrome()
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n")

	cur, ok := m.current()
	if !ok {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("No todolists. Press n to create one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.headerView(cur))
		b.WriteString("\n")
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(filterView(cur.Filter))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeAddTask, modeNewList, modeRenameList:
		b.WriteString(m.inputView())
		b.WriteString("\n")
	case modeConfirmRemove:
		b.WriteString(warnStyle.Render(fmt.Sprintf("Remove %q and all its tasks? (y/N)", cur.Title)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return frameStyle.Render(b.String())
}

func (m Model) tabsView() string {
	if len(m.snap.Lists) == 0 {
		return titleStyle.Render("Todolists")
	}
	tabs := make([]string, 0, len(m.snap.Lists))
	for i, l := range m.snap.Lists {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(l.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(l.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) headerView(l model.Todolist) string {
	d, p := store.Stats(m.snap.Tasks(l.ID))
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render(l.Title),
		successStyle.Render("✔"), d,
		pendingStyle.Render("•"), p,
		accentStyle.Render("Total"), d+p,
	)
}

func filterView(active model.Filter) string {
	parts := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		if f == active {
			parts = append(parts, activeTabStyle.Render(f.Label()))
		} else {
			parts = append(parts, tabStyle.Render(f.Label()))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) inputView() string {
	var title, hint string
	switch m.mode {
	case modeAddTask:
		title = "Add task"
		h := store.TitleHint(m.input.Value())
		switch {
		case m.inputErr != "":
			hint = warnStyle.Render(m.inputErr)
		case h.Kind == store.HintTooLong:
			hint = errorStyle.Render(h.String())
		default:
			hint = mutedStyle.Render(h.String())
		}
	case modeNewList:
		title = "New list"
	case modeRenameList:
		title = "Rename list"
	}
	if m.mode != modeAddTask && m.inputErr != "" {
		hint = warnStyle.Render(m.inputErr)
	}
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	body := title + "\n" + m.input.View()
	if hint != "" {
		body += "\n" + hint
	}
	return bar.Render(body)
}
