package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
)

type HistoryCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show history for a specific habit only."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	user, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabitsForUser(user.ID)
	if err != nil {
		return err
	}
	if c.Habit != "" {
		habit, err := ctx.FindHabit(user, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Check-in history (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(padName("Habit", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*c.Days))

	for _, habit := range habits {
		fmt.Print(padName(habit.Name, maxNameLen))

		checkins, err := ctx.Store.GetCheckinsForHabit(
			habit.ID,
			startDay.Format(constants.DateFormat),
			endDay.Format(constants.DateFormat),
		)
		if err != nil {
			return err
		}

		byDay := make(map[string]bool, len(checkins))
		for _, ci := range checkins {
			byDay[ci.Day] = ci.Completed
		}

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i).Format(constants.DateFormat)
			completed, recorded := byDay[day]
			switch {
			case recorded && completed:
				fmt.Print("  x   ")
			case recorded:
				fmt.Print("  o   ")
			default:
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	fmt.Println("\nx = completed, o = missed, . = no record")
	return nil
}

func padName(name string, width int) string {
	if len(name) > width {
		if width >= 5 {
			return name[:width-3] + "..."
		}
		return name[:width]
	}
	return name + strings.Repeat(" ", width-len(name))
}
