package session

import "errors"

var (
	// ErrCorruptedRecord indicates the stored value is not a valid session record.
	ErrCorruptedRecord = errors.New("session.corrupted_record")

	// ErrNoStorage indicates the repository was created without a storage backend.
	ErrNoStorage = errors.New("session.no_storage")

	// ErrEmptyKey indicates an empty storage key was configured.
	ErrEmptyKey = errors.New("session.empty_key")

	// ErrMissingCredentials indicates a save was attempted without username or password.
	ErrMissingCredentials = errors.New("session.missing_credentials")
)
