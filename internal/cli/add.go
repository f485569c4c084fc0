package cli

import (
	"context"
	"fmt"
	"strings"
)

type AddCmd struct {
	Note []string `arg:"" help:"Reminder text, e.g. \"dentist on 2026-09-12 at 14:30\"."`
}

func (c *AddCmd) Run(ctx *Context) error {
	note := strings.TrimSpace(strings.Join(c.Note, " "))

	result, err := ctx.Client.Create(context.Background(), ctx.UserID(), note)
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Println("Reminder added")
	}
	return nil
}
