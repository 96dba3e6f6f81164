package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitflow/internal/models"
)

type AddHabitMsg struct{}

type ToggleCheckinMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type QuoteRequestMsg struct {
	HabitName string
	Streak    int
}

// Item pairs a habit with its derived daily state for list display.
type Item struct {
	Habit         models.Habit
	DoneToday     bool
	CurrentStreak int
}

func (i Item) Title() string {
	marker := "○"
	if i.DoneToday {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	status := "not checked in today"
	if i.DoneToday {
		status = "completed today"
	}
	return fmt.Sprintf("%s · %s", status, streakStyle.Render(fmt.Sprintf("%d-day streak", i.CurrentStreak)))
}

func (i Item) FilterValue() string { return i.Habit.Name }

type habitKeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Quote  key.Binding
}

func defaultHabitKeyMap() habitKeyMap {
	return habitKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space", "toggle check-in"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quote: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "get motivation"),
		),
	}
}

type habitList struct {
	list list.Model
	keys habitKeyMap
}

func newHabitList(items []Item, width, height int) habitList {
	keys := defaultHabitKeyMap()

	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Quote}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Quote}
	}

	return habitList{list: l, keys: keys}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m *habitList) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m habitList) Update(msg tea.Msg) (habitList, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleCheckinMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Quote):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return QuoteRequestMsg{HabitName: i.Habit.Name, Streak: i.CurrentStreak}
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m habitList) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *habitList) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
