package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// NoteFormModel backs the add-reminder form. The server parses the free-form
// note into one or more reminders; the client only refuses empty input.
type NoteFormModel struct {
	Text string
}

// RegisterFormModel backs the registration demo form.
type RegisterFormModel struct {
	Username string
	Email    string
	Password string
}

// LoginFormModel backs the login demo form.
type LoginFormModel struct {
	Username string
	Password string
}

// NewNoteForm creates the add-reminder form.
func NewNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Reminder note").
				Description("Free-form; the server schedules one or more reminders from it.").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("reminder note cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewRegisterForm creates the registration form. All fields are required
// before any request is sent.
func NewRegisterForm(fm *RegisterFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&fm.Username).
				Validate(notEmpty("username")),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("email cannot be empty")
					}
					if !strings.Contains(s, "@") {
						return fmt.Errorf("email must contain @")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(notEmpty("password")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewLoginForm creates the login form.
func NewLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&fm.Username).
				Validate(notEmpty("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(notEmpty("password")),
		),
	).WithTheme(huh.ThemeDracula())
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
