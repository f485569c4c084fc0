package cli

import (
	"context"
	"fmt"
)

type CompleteCmd struct {
	ID int64 `arg:"" help:"Reminder ID to mark as completed."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	result, err := ctx.Client.Complete(context.Background(), c.ID)
	if err != nil {
		return fmt.Errorf("failed to complete reminder %d: %w", c.ID, err)
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Printf("Marked reminder %d as completed\n", c.ID)
	}
	return nil
}
