package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"

	"github.com/mwidmann/remindcal/internal/api"
	"github.com/mwidmann/remindcal/internal/constants"
	"github.com/mwidmann/remindcal/internal/identity"
)

type DoctorCmd struct{}

// Run prints a health report: identity storage, server reachability, the
// snapshot cache, and whether another instance is already running.
func (c *DoctorCmd) Run(ctx *Context) error {
	ok := true

	fmt.Println("remindcal doctor")
	fmt.Println()

	id := ctx.UserID()
	fmt.Printf("  identity:  ok (%s)\n", id)
	if ctx.Identity.FirstRun() {
		fmt.Println("             note: identifier was generated just now")
	}

	if err := checkKeyring(); err != nil {
		fmt.Printf("  keyring:   unavailable (%v), falling back to file storage\n", err)
	} else {
		fmt.Println("  keyring:   ok")
	}

	if err := checkServer(ctx); err != nil {
		fmt.Printf("  server:    unreachable (%s): %v\n", ctx.Config.ServerURL, err)
		ok = false
	} else {
		fmt.Printf("  server:    ok (%s)\n", ctx.Config.ServerURL)
	}

	if ctx.Snapshots == nil {
		fmt.Println("  snapshot:  disabled")
	} else if _, fetched, found, err := ctx.Snapshots.Get(id); err != nil {
		fmt.Printf("  snapshot:  error: %v\n", err)
		ok = false
	} else if !found {
		fmt.Println("  snapshot:  empty (no successful fetch yet)")
	} else {
		fmt.Printf("  snapshot:  ok (last fetch %s)\n", fetched.Local().Format("2006-01-02 15:04:05"))
	}

	if n, err := countInstances(); err != nil {
		fmt.Printf("  processes: could not inspect: %v\n", err)
	} else if n > 1 {
		fmt.Printf("  processes: %d instances running\n", n)
	} else {
		fmt.Println("  processes: ok")
	}

	if !ok {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println()
	fmt.Println("All checks passed")
	return nil
}

func checkKeyring() error {
	store := identity.KeyringStore{}
	_, err := store.Get()
	if err != nil && !errors.Is(err, identity.ErrNotFound) {
		return err
	}
	return nil
}

func checkServer(ctx *Context) error {
	_, err := ctx.Client.ListUsers(context.Background())
	if err != nil && !api.IsTransport(err) {
		// An application-level error still proves the server answered.
		return nil
	}
	return err
}

func countInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := filepath.Base(os.Args[0])
	if self == "" {
		self = constants.AppName
	}
	n := 0
	for _, p := range procs {
		if p.Executable() == self {
			n++
		}
	}
	return n, nil
}
