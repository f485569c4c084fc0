package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

type DeleteCmd struct {
	ID  int64 `arg:"" help:"Reminder ID to delete."`
	Yes bool  `help:"Skip the confirmation prompt." short:"y"`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Printf("Delete reminder %d? [y/N] ", c.ID)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	result, err := ctx.Client.Delete(context.Background(), c.ID, ctx.UserID())
	if err != nil {
		return fmt.Errorf("failed to delete reminder %d: %w", c.ID, err)
	}

	if result.Message != "" {
		fmt.Println(result.Message)
	} else {
		fmt.Printf("Deleted reminder %d\n", c.ID)
	}
	return nil
}
