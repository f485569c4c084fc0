package constants

import "time"

const (
	// AppName is used for the keyring service name and the config directory.
	AppName = "remindcal"

	// DateFormat is the canonical calendar-day key (matches the server's
	// `date` field on month entries).
	DateFormat = "2006-01-02"

	// TimeFormat renders the time-of-day portion of agenda rows.
	TimeFormat = "15:04"

	// DateTimeFormat parses the server's `datetime` field.
	DateTimeFormat = time.RFC3339
)

const (
	// DefaultServerURL is the reminder service base URL.
	DefaultServerURL = "http://localhost:5000"

	// DefaultPollSeconds is the sync loop interval. Every tick re-fetches the
	// reminder list and the visible month.
	DefaultPollSeconds = 10

	// DefaultWatchCron drives the headless `watch` command.
	DefaultWatchCron = "@every 10s"

	// DefaultRequestTimeout bounds every gateway call.
	DefaultRequestTimeout = 10 * time.Second

	// StatusMessageTTL is how long a transient status toast stays visible.
	StatusMessageTTL = 5 * time.Second
)

const (
	// KeyringUser is the keyring account name under which the user identifier
	// is stored.
	KeyringUser = "user-id"

	// IdentityFileName is the fallback identity file under the config dir,
	// used when the OS keyring is unavailable.
	IdentityFileName = "user_id"
)
