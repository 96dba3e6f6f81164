package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/streak"
)

type CheckinCmd struct {
	Habit  string `arg:"" help:"Habit name to check in."`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Missed bool   `help:"Record the day as missed instead of completed."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	habit, err := ctx.FindHabit(user, c.Habit)
	if err != nil {
		return err
	}

	day, err := ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.RecordCheckin(habit.ID, day, !c.Missed); err != nil {
		return err
	}

	if c.Missed {
		fmt.Printf("Recorded %q as missed for %s.\n", habit.Name, day)
		return nil
	}

	fmt.Printf("Checked in %q for %s. 💪\n", habit.Name, day)

	days, err := ctx.Store.CompletedDays(habit.ID)
	if err != nil {
		return err
	}
	asOf, _ := time.Parse(constants.DateFormat, day)
	cur := streak.Current(days, asOf)
	fmt.Printf("Current streak: %d day(s)\n", cur)

	if msg := streak.Milestone(cur); msg != "" {
		fmt.Println(msg)
	}

	quoteCtx, cancel := context.WithTimeout(context.Background(), constants.EnrichmentTimeout)
	defer cancel()
	fmt.Println(ctx.Motivator.Message(quoteCtx, motivation.Request{
		UserName:  user.Name,
		HabitName: habit.Name,
		Streak:    cur,
	}))

	return nil
}
