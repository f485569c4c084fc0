package cli

import (
	"context"
	"fmt"
)

type RegisterCmd struct {
	Username string `arg:"" help:"Username to register."`
	Email    string `arg:"" help:"Email address."`
	Password string `arg:"" help:"Password."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	result, err := ctx.Client.Register(context.Background(), c.Username, c.Email, c.Password)
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	fmt.Println(result.Message)
	return nil
}

type LoginCmd struct {
	Username string `arg:"" help:"Username."`
	Password string `arg:"" help:"Password."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	result, err := ctx.Client.Login(context.Background(), c.Username, c.Password)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	fmt.Println(result.Message)
	return nil
}

type UsersCmd struct{}

func (c *UsersCmd) Run(ctx *Context) error {
	users, err := ctx.Client.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}
	if len(users) == 0 {
		fmt.Println("No users registered")
		return nil
	}

	fmt.Println("Registered users:")
	for _, u := range users {
		fmt.Printf("  %d: %s <%s>\n", u.ID, u.Username, u.Email)
	}
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	fmt.Println(ctx.UserID())
	return nil
}
