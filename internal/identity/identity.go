package identity

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/zalando/go-keyring"

	"github.com/mwidmann/remindcal/internal/constants"
	"github.com/mwidmann/remindcal/internal/logger"
)

// ErrNotFound is returned by a Store when no identifier has been persisted.
var ErrNotFound = errors.New("identity not found")

// Store persists a single identifier string.
type Store interface {
	Get() (string, error)
	Set(id string) error
}

// Provider hands out the per-installation user identifier. The first call
// generates and persists a UUIDv4; later calls return the stored value. The
// identifier scopes every reminder request, so losing it orphans the user's
// reminders on the server.
type Provider struct {
	stores   []Store
	cached   string
	firstRun bool
}

// New builds a provider that tries the OS keyring first and falls back to a
// plain file under configDir when the keyring is unavailable.
func New(configDir string) *Provider {
	return &Provider{
		stores: []Store{
			KeyringStore{},
			FileStore{Path: filepath.Join(configDir, constants.IdentityFileName)},
		},
	}
}

// NewWithStores is the injectable constructor used by tests and by callers
// that need a specific persistence order.
func NewWithStores(stores ...Store) *Provider {
	return &Provider{stores: stores}
}

// UserID returns the stored identifier, generating and persisting a new one
// when none exists. It never fails: if every store is unusable the generated
// identifier is kept in memory only, trading persistence for availability.
func (p *Provider) UserID() string {
	if p.cached != "" {
		return p.cached
	}

	for _, s := range p.stores {
		id, err := s.Get()
		if err == nil && valid(id) {
			p.cached = id
			return id
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			logger.Warn("identity store read failed", "error", err)
		}
	}

	id := uuid.NewString()
	p.firstRun = true
	p.cached = id

	persisted := false
	for _, s := range p.stores {
		if err := s.Set(id); err != nil {
			logger.Warn("identity store write failed", "error", err)
			continue
		}
		persisted = true
		break
	}
	if !persisted {
		logger.Warn("identity not persisted, using ephemeral id")
	}
	return id
}

// FirstRun reports whether this process generated the identifier, so the UI
// can show the one-time greeting with the new id.
func (p *Provider) FirstRun() bool {
	return p.firstRun
}

func valid(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// KeyringStore keeps the identifier in the OS keyring.
type KeyringStore struct{}

func (KeyringStore) Get() (string, error) {
	id, err := keyring.Get(constants.AppName, constants.KeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", err
	}
	return id, nil
}

func (KeyringStore) Set(id string) error {
	return keyring.Set(constants.AppName, constants.KeyringUser, id)
}

// FileStore keeps the identifier in a plain file. It is the fallback for
// systems without a usable keyring.
type FileStore struct {
	Path string
}

func (f FileStore) Get() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f FileStore) Set(id string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(id+"\n"), 0600)
}
