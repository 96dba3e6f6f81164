package reminder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/streak"
)

// Store is the read-only slice of the storage provider the poller needs.
// The poller never writes check-ins; it only inspects today's state.
type Store interface {
	GetSettings() (models.Settings, error)
	GetUserByName(name string) (models.User, error)
	GetHabitsForUser(userID string) ([]models.Habit, error)
	CompletedDays(habitID string) ([]string, error)
}

// Poller wakes on an interval and fires at most one reminder per calendar
// day, once the configured reminder time has passed and at least one habit
// is still unchecked.
type Poller struct {
	store    Store
	interval time.Duration
	now      func() time.Time
	notify   func(string)

	lastFired string
}

func New(store Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = constants.DefaultReminderInterval
	}
	return &Poller{
		store:    store,
		interval: interval,
		now:      time.Now,
		notify: func(msg string) {
			fmt.Println(msg)
		},
	}
}

// RunOnce performs a single check and returns.
func (p *Poller) RunOnce() error {
	p.tick()
	return nil
}

// Run polls until ctx is cancelled. The first check happens immediately so
// a poller started after the reminder time still fires for today.
func (p *Poller) Run(ctx context.Context) error {
	p.tick()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	now := p.now()
	today := now.Format(constants.DateFormat)
	if p.lastFired == today {
		return
	}

	settings, err := p.store.GetSettings()
	if err != nil {
		logger.Warn("reminder: failed to load settings", "error", err)
		return
	}
	if !settings.ReminderEnabled {
		return
	}

	due, err := time.Parse(constants.TimeFormat, settings.ReminderTime)
	if err != nil {
		logger.Warn("reminder: invalid reminder time", "value", settings.ReminderTime)
		return
	}
	fireAt := time.Date(now.Year(), now.Month(), now.Day(), due.Hour(), due.Minute(), 0, 0, now.Location())
	if now.Before(fireAt) {
		return
	}

	msg, err := p.compose(now, settings.DefaultUser)
	if err != nil {
		logger.Warn("reminder: failed to compose reminder", "error", err)
		return
	}

	p.lastFired = today
	if msg == "" {
		return
	}
	p.notify(msg)
}

// compose builds the reminder text for every habit still unchecked today.
// Returns empty when there is nothing to remind about.
func (p *Poller) compose(now time.Time, userName string) (string, error) {
	if userName == "" {
		userName = os.Getenv(constants.EnvUser)
	}
	if userName == "" {
		logger.Debug("reminder: no default user configured, skipping")
		return "", nil
	}

	user, err := p.store.GetUserByName(userName)
	if err != nil {
		return "", err
	}
	habits, err := p.store.GetHabitsForUser(user.ID)
	if err != nil {
		return "", err
	}

	today := now.Format(constants.DateFormat)
	var pending []string
	for _, h := range habits {
		days, err := p.store.CompletedDays(h.ID)
		if err != nil {
			return "", err
		}
		if len(days) > 0 && days[0] == today {
			continue
		}
		// Streak as of yesterday, the run still alive going into today
		if cur := streak.Current(days, now.AddDate(0, 0, -1)); cur > 0 {
			pending = append(pending, fmt.Sprintf("%q (%d-day streak at stake)", h.Name, cur))
		} else {
			pending = append(pending, fmt.Sprintf("%q", h.Name))
		}
	}
	if len(pending) == 0 {
		return "", nil
	}

	return fmt.Sprintf("⏰ Hey %s, don't forget to check in today: %s", user.Name, strings.Join(pending, ", ")), nil
}
