package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/streak"
)

type habitsReloadedMsg struct {
	items []Item
}

type quoteMsg struct {
	text string
}

type errMsg struct {
	err error
}

func (m Model) reloadHabits() tea.Cmd {
	store := m.store
	userID := m.user.ID
	return func() tea.Msg {
		items, err := loadItems(store, userID)
		if err != nil {
			return errMsg{err: err}
		}
		return habitsReloadedMsg{items: items}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.habits.SetSize(msg.Width-h, msg.Height-v-6)
		return m, nil

	case habitsReloadedMsg:
		m.items = msg.items
		m.habits.SetItems(msg.items)
		m.errMsg = ""
		return m, nil

	case quoteMsg:
		m.quote = msg.text
		m.quoteLoading = false
		return m, nil

	case errMsg:
		m.errMsg = msg.err.Error()
		m.quoteLoading = false
		return m, nil

	case AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = stateAddHabit
		return m, m.form.Init()

	case ToggleCheckinMsg:
		return m.toggleCheckin(msg.ID)

	case DeleteHabitMsg:
		if err := m.store.DeleteHabit(msg.ID); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.statusMsg = "Habit deleted."
		return m, m.reloadHabits()

	case QuoteRequestMsg:
		m.quoteLoading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchQuote(motivation.Request{
			UserName:  m.user.Name,
			HabitName: msg.HabitName,
			Streak:    msg.Streak,
		}))
	}

	if m.state == stateAddHabit {
		return m.updateAddForm(msg)
	}

	if m.quoteLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if cmd != nil {
			return m, cmd
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(keyMsg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.habits, cmd = m.habits.Update(msg)
	return m, cmd
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = stateList
		name := trimName(m.habitForm.Name)

		if _, err := m.store.GetHabitByName(m.user.ID, name); err == nil {
			m.errMsg = "habit with that name already exists"
			return m, nil
		}

		habit := models.Habit{
			ID:        uuid.New().String(),
			UserID:    m.user.ID,
			Name:      name,
			StartDate: time.Now().Format(constants.DateFormat),
			CreatedAt: time.Now(),
		}
		if err := m.store.AddHabit(habit); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.statusMsg = "Added habit: " + name
		return m, m.reloadHabits()
	}
	if m.form.State == huh.StateAborted {
		m.state = stateList
		return m, nil
	}

	return m, cmd
}

func (m Model) toggleCheckin(habitID string) (tea.Model, tea.Cmd) {
	item, ok := m.findItem(habitID)
	if !ok {
		return m, nil
	}

	today := time.Now()
	day := today.Format(constants.DateFormat)

	if item.DoneToday {
		// Re-record as missed; history keeps one row per day
		if err := m.store.RecordCheckin(habitID, day, false); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.statusMsg = "Unmarked " + item.Habit.Name + " for today."
		return m, m.reloadHabits()
	}

	if err := m.store.RecordCheckin(habitID, day, true); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	days, err := m.store.CompletedDays(habitID)
	if err != nil {
		m.errMsg = err.Error()
		return m, m.reloadHabits()
	}
	cur := streak.Current(days, today)
	m.statusMsg = "Checked in " + item.Habit.Name + "!"
	if milestone := streak.Milestone(cur); milestone != "" {
		m.statusMsg = milestone
	}

	m.quoteLoading = true
	return m, tea.Batch(
		m.reloadHabits(),
		m.spinner.Tick,
		m.fetchQuote(motivation.Request{
			UserName:  m.user.Name,
			HabitName: item.Habit.Name,
			Streak:    cur,
		}),
	)
}
