package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/storage"
	"github.com/julianstephens/habitflow/internal/streak"
	"github.com/julianstephens/habitflow/internal/validation"
)

type sessionState int

const (
	stateList sessionState = iota
	stateAddHabit
)

type KeyMap struct {
	Quit key.Binding
	Help key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

type HabitFormModel struct {
	Name string
}

type Model struct {
	store     storage.Provider
	motivator *motivation.Motivator
	user      models.User

	state     sessionState
	keys      KeyMap
	help      help.Model
	habits    habitList
	items     []Item
	spinner   spinner.Model
	form      *huh.Form
	habitForm *HabitFormModel

	quote        string
	quoteLoading bool
	statusMsg    string
	errMsg       string
	quitting     bool
	width        int
	height       int
}

func NewModel(store storage.Provider, motivator *motivation.Motivator, user models.User) Model {
	items, err := loadItems(store, user.ID)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		store:     store,
		motivator: motivator,
		user:      user,
		state:     stateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habits:    newHabitList(items, 0, 0),
		items:     items,
		spinner:   sp,
	}
	if err != nil {
		m.errMsg = err.Error()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// loadItems derives each habit's dashboard state from its completed days.
func loadItems(store storage.Provider, userID string) ([]Item, error) {
	habits, err := store.GetHabitsForUser(userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	todayStr := today.Format(constants.DateFormat)
	items := make([]Item, 0, len(habits))
	for _, h := range habits {
		days, err := store.CompletedDays(h.ID)
		if err != nil {
			return items, err
		}
		items = append(items, Item{
			Habit:         h,
			DoneToday:     len(days) > 0 && days[0] == todayStr,
			CurrentStreak: streak.Current(days, today),
		})
	}
	return items, nil
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validation.HabitName),
		),
	).WithTheme(huh.ThemeDracula())
}

// fetchQuote asks the motivator for a message off the update loop.
func (m Model) fetchQuote(req motivation.Request) tea.Cmd {
	motivator := m.motivator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.EnrichmentTimeout)
		defer cancel()
		return quoteMsg{text: motivator.Message(ctx, req)}
	}
}

func (m *Model) findItem(habitID string) (Item, bool) {
	for _, it := range m.items {
		if it.Habit.ID == habitID {
			return it, true
		}
	}
	return Item{}, false
}

func trimName(name string) string {
	return strings.TrimSpace(name)
}
