package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/streak"
)

type QuoteCmd struct {
	Habit string `arg:"" optional:"" help:"Habit to get motivated about."`
}

func (c *QuoteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	req := motivation.Request{UserName: user.Name}
	if c.Habit != "" {
		habit, err := ctx.FindHabit(user, c.Habit)
		if err != nil {
			return err
		}
		days, err := ctx.Store.CompletedDays(habit.ID)
		if err != nil {
			return err
		}
		req.HabitName = habit.Name
		req.Streak = streak.Current(days, time.Now())
	}

	quoteCtx, cancel := context.WithTimeout(context.Background(), constants.EnrichmentTimeout)
	defer cancel()
	fmt.Println(ctx.Motivator.Message(quoteCtx, req))
	return nil
}
