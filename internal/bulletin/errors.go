package bulletin

import "errors"

var (
	// ErrNotFound reports that a GitHub identity does not exist upstream.
	ErrNotFound = errors.New("user not found")
	// ErrNoBulletin is returned by a Store when the user has no persisted bulletin.
	ErrNoBulletin = errors.New("no bulletin stored")

	ErrNotLoaded            = errors.New("bulletin not loaded")
	ErrSectionNotFound      = errors.New("section not found")
	ErrRepoRefNotFound      = errors.New("repository reference not found")
	ErrUnknownRepository    = errors.New("repository is not in the owner's catalog")
	ErrUnownedRepository    = errors.New("bulletin references repositories the owner does not own")
	ErrEmptySelection       = errors.New("no repositories selected")
	ErrPickerClosed         = errors.New("repository picker is not open")
	ErrConfirmationRequired = errors.New("removing this section requires confirmation")
	ErrCannotAddSection     = errors.New("cannot add a section now")
	ErrCannotSave           = errors.New("bulletin cannot be saved now")
	ErrSaveInFlight         = errors.New("a save is already in progress")
	ErrSessionClosed        = errors.New("edit session is closed")
	ErrInvalidBulletin      = errors.New("invalid bulletin")
)
