package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/session"
	"github.com/julianstephens/habitflow/internal/streak"
	"github.com/julianstephens/habitflow/internal/validation"
)

const (
	actionCheckin  = "checkin"
	actionMissed   = "missed"
	actionSwitch   = "switch"
	actionAdd      = "add"
	actionStreaks  = "streaks"
	actionMotivate = "motivate"
	actionQuit     = "quit"
)

// ChatCmd is the interactive session, the default when no subcommand is
// given.
type ChatCmd struct{}

func (c *ChatCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		user, err = promptForUser(ctx)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Hey %s! Let's keep those habits going. 🌱\n", user.Name)
	sess := session.New(user.ID, user.Name)

	for {
		action, err := promptForAction()
		if err != nil {
			return err
		}

		switch action {
		case actionCheckin, actionMissed:
			if err := c.recordToday(ctx, sess, action == actionMissed); err != nil {
				fmt.Println(err)
			}
		case actionSwitch:
			if err := c.switchHabit(ctx, sess); err != nil {
				fmt.Println(err)
			}
		case actionAdd:
			if err := c.addHabit(ctx, sess); err != nil {
				fmt.Println(err)
			}
		case actionStreaks:
			if err := c.showStreaks(ctx, sess); err != nil {
				fmt.Println(err)
			}
		case actionMotivate:
			quoteCtx, cancel := context.WithTimeout(context.Background(), constants.EnrichmentTimeout)
			fmt.Println(ctx.Motivator.Message(quoteCtx, motivation.Request{UserName: sess.UserName}))
			cancel()
		case actionQuit:
			fmt.Printf("See you tomorrow, %s! 👋\n", sess.UserName)
			return nil
		}
	}
}

func promptForUser(ctx *Context) (models.User, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(&name).
				Validate(validation.UserName),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return models.User{}, err
	}
	return ctx.Store.EnsureUser(name)
}

func promptForAction() (string, error) {
	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Check in for today", actionCheckin),
					huh.NewOption("Record today as missed", actionMissed),
					huh.NewOption("Switch habit", actionSwitch),
					huh.NewOption("Add a new habit", actionAdd),
					huh.NewOption("Show my streaks", actionStreaks),
					huh.NewOption("Give me some motivation", actionMotivate),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&action),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

// ensureHabit returns the session's selected habit, prompting for a
// selection first if none is set.
func (c *ChatCmd) ensureHabit(ctx *Context, sess *session.Session) (models.Habit, error) {
	if !sess.HasSelection() {
		if err := c.switchHabit(ctx, sess); err != nil {
			return models.Habit{}, err
		}
	}
	return ctx.Store.GetHabit(sess.CurrentHabitID)
}

func (c *ChatCmd) switchHabit(ctx *Context, sess *session.Session) error {
	habits, err := ctx.Store.GetHabitsForUser(sess.UserID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet, let's add one first.")
		return c.addHabit(ctx, sess)
	}

	options := make([]huh.Option[string], 0, len(habits))
	for _, h := range habits {
		options = append(options, huh.NewOption(h.Name, h.ID))
	}

	var habitID string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which habit?").
				Options(options...).
				Value(&habitID),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	sess.SelectHabit(habitID)
	return nil
}

func (c *ChatCmd) addHabit(ctx *Context, sess *session.Session) error {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&name).
				Validate(validation.HabitName),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(sess.UserID, name); err == nil {
		return fmt.Errorf("habit with name %q already exists", name)
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    sess.UserID,
		Name:      name,
		StartDate: time.Now().Format(constants.DateFormat),
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", name)
	sess.SelectHabit(habit.ID)
	return nil
}

func (c *ChatCmd) recordToday(ctx *Context, sess *session.Session, missed bool) error {
	habit, err := c.ensureHabit(ctx, sess)
	if err != nil {
		return err
	}

	today := time.Now()
	day := today.Format(constants.DateFormat)
	if err := ctx.Store.RecordCheckin(habit.ID, day, !missed); err != nil {
		return err
	}

	if missed {
		fmt.Printf("Recorded %q as missed for %s. Tomorrow is a fresh start!\n", habit.Name, day)
		return nil
	}

	fmt.Printf("Checked in %q for %s. 💪\n", habit.Name, day)

	days, err := ctx.Store.CompletedDays(habit.ID)
	if err != nil {
		return err
	}
	cur := streak.Current(days, today)
	fmt.Printf("Current streak: %d day(s)\n", cur)
	if msg := streak.Milestone(cur); msg != "" {
		fmt.Println(msg)
	}

	quoteCtx, cancel := context.WithTimeout(context.Background(), constants.EnrichmentTimeout)
	defer cancel()
	fmt.Println(ctx.Motivator.Message(quoteCtx, motivation.Request{
		UserName:  sess.UserName,
		HabitName: habit.Name,
		Streak:    cur,
	}))
	return nil
}

func (c *ChatCmd) showStreaks(ctx *Context, sess *session.Session) error {
	habits, err := ctx.Store.GetHabitsForUser(sess.UserID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	today := time.Now()
	fmt.Println("Your streaks:")
	for _, h := range habits {
		days, err := ctx.Store.CompletedDays(h.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  %-30s %d day(s)\n", h.Name, streak.Current(days, today))
	}
	return nil
}
