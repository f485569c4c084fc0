package cli

import (
	"github.com/mwidmann/remindcal/internal/api"
	"github.com/mwidmann/remindcal/internal/cache"
	"github.com/mwidmann/remindcal/internal/config"
	"github.com/mwidmann/remindcal/internal/identity"
)

type Context struct {
	Client    *api.Client
	Identity  *identity.Provider
	Config    *config.Config
	Snapshots *cache.Store
}

// UserID is a convenience passthrough; the provider never fails.
func (c *Context) UserID() string {
	return c.Identity.UserID()
}
