package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/streak"
	"github.com/julianstephens/habitflow/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Start string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := validation.HabitName(c.Name); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(user.ID, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	start, err := ResolveDay(c.Start)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      c.Name,
		StartDate: start,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsForUser(user.ID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add <name>'.")
		return nil
	}

	today := time.Now()
	todayStr := today.Format(constants.DateFormat)
	fmt.Printf("Habits for %s:\n\n", user.Name)
	for _, habit := range habits {
		days, err := ctx.Store.CompletedDays(habit.ID)
		if err != nil {
			return err
		}
		status := "[ ]"
		if len(days) > 0 && days[0] == todayStr {
			status = "[x]"
		}
		cur := streak.Current(days, today)
		fmt.Printf("%s %s (streak: %d)\n", status, habit.Name, cur)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	habit, err := ctx.FindHabit(user, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'habitflow habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	if err := ctx.Store.RestoreHabit(user.ID, c.Name); err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("deleted habit %q not found", c.Name)
		}
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}
