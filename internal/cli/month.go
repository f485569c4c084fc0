package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	cal "github.com/mwidmann/remindcal/internal/calendar"
	"github.com/mwidmann/remindcal/internal/format"
)

type MonthCmd struct {
	Year  int    `help:"Year to show (defaults to the current year)."`
	Month int    `help:"Month to show, 1-12 (defaults to the current month)."`
	Day   string `help:"Also print the schedule for a day (YYYY-MM-DD)."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	m := cal.CurrentMonth(time.Now())
	if c.Year != 0 {
		m.Year = c.Year
	}
	if c.Month != 0 {
		if c.Month < 1 || c.Month > 12 {
			return fmt.Errorf("invalid month: %d", c.Month)
		}
		m.Month = time.Month(c.Month)
	}

	entries, err := ctx.Client.ListForMonth(context.Background(), ctx.UserID(), m.Year, int(m.Month))
	if err != nil {
		return fmt.Errorf("failed to get month data: %w", err)
	}

	fmt.Println(m.Title())
	fmt.Println("Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	cells := cal.Grid(m, entries, c.Day)
	var row []string
	for i, cell := range cells {
		row = append(row, renderCell(cell))
		if (i+1)%7 == 0 {
			fmt.Println(strings.Join(row, ""))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		fmt.Println(strings.Join(row, ""))
	}

	if c.Day != "" {
		return c.printDay(ctx)
	}
	return nil
}

func (c *MonthCmd) printDay(ctx *Context) error {
	reminders, err := ctx.Client.ListAll(context.Background(), ctx.UserID())
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}

	agenda := cal.Agenda(reminders, c.Day)
	fmt.Printf("\nSchedule for %s:\n", c.Day)
	if len(agenda) == 0 {
		fmt.Println("  nothing scheduled")
		return nil
	}
	for _, r := range agenda {
		fmt.Printf("  %s\n", format.AgendaRow(r))
	}
	return nil
}

func renderCell(cell cal.Cell) string {
	if cell.Day == 0 {
		return "     "
	}
	mark := " "
	switch cell.Marker {
	case cal.MarkerSingle:
		mark = "*"
	case cal.MarkerMultiple:
		mark = "#"
	}
	return fmt.Sprintf("%3d%s ", cell.Day, mark)
}
