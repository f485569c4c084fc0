package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/mwidmann/remindcal/internal/format"
)

type ListCmd struct {
	ShowMetadata bool `help:"Show parsed metadata for each reminder." name:"show-metadata"`
}

func (c *ListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Client.ListAll(context.Background(), ctx.UserID())
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	if len(reminders) == 0 {
		fmt.Println("No reminders found")
		return nil
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DateTime.Before(reminders[j].DateTime)
	})

	fmt.Println("Reminders:")
	for _, r := range reminders {
		fmt.Printf("  [%s] %s (ID: %d)\n", format.Status(r), format.ListRow(r), r.ID)

		if c.ShowMetadata && len(r.Metadata) > 0 {
			keys := make([]string, 0, len(r.Metadata))
			for k := range r.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if r.Metadata[k] == "" {
					continue
				}
				fmt.Printf("      %s: %s\n", format.TitleCase(k), r.Metadata[k])
			}
		}
	}

	return nil
}
