package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/streak"
)

type StreakCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name (default: all habits)."`
	AsOf  string `help:"Evaluate the streak as of this date (YYYY-MM-DD)." default:""`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	day, err := ResolveDay(c.AsOf)
	if err != nil {
		return err
	}
	asOf, _ := time.Parse(constants.DateFormat, day)

	if c.Habit != "" {
		habit, err := ctx.FindHabit(user, c.Habit)
		if err != nil {
			return err
		}
		days, err := ctx.Store.CompletedDays(habit.ID)
		if err != nil {
			return err
		}
		cur := streak.Current(days, asOf)
		fmt.Printf("%s: %d day(s)\n", habit.Name, cur)
		if msg := streak.Milestone(cur); msg != "" {
			fmt.Println(msg)
		}
		return nil
	}

	habits, err := ctx.Store.GetHabitsForUser(user.ID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("Streaks as of %s:\n\n", day)
	for _, habit := range habits {
		days, err := ctx.Store.CompletedDays(habit.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  %-30s %d day(s)\n", habit.Name, streak.Current(days, asOf))
	}

	return nil
}
