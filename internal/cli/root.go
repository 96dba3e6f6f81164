package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/storage"
	"github.com/julianstephens/habitflow/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Motivator *motivation.Motivator

	// User is the --user flag value, resolved lazily by ResolveUser.
	User string
}

// ResolveUser finds the acting user, trying the --user flag, then the
// HABITFLOW_USER environment variable, then the default_user setting.
// The user row is created on first use.
func (c *Context) ResolveUser() (models.User, error) {
	name := c.User
	if name == "" {
		name = os.Getenv(constants.EnvUser)
	}
	if name == "" {
		settings, err := c.Store.GetSettings()
		if err != nil {
			return models.User{}, err
		}
		name = settings.DefaultUser
	}
	if name == "" {
		return models.User{}, fmt.Errorf("no user specified (use --user, set %s, or run 'habitflow config set default-user')", constants.EnvUser)
	}
	if err := validation.UserName(name); err != nil {
		return models.User{}, err
	}
	return c.Store.EnsureUser(name)
}

// FindHabit looks up one of the user's active habits by name.
func (c *Context) FindHabit(user models.User, name string) (models.Habit, error) {
	habit, err := c.Store.GetHabitByName(user.ID, name)
	if err != nil {
		if errors.IsNotFound(err) {
			return models.Habit{}, fmt.Errorf("habit %q not found (try 'habitflow habit list')", name)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

// ResolveDay validates a YYYY-MM-DD flag value, defaulting to today.
func ResolveDay(flag string) (string, error) {
	if flag == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if err := validation.Day(flag); err != nil {
		return "", err
	}
	return flag, nil
}
