package domain

import "errors"

var (
	ErrCredentialMissing    = errors.New("no api key configured")
	ErrCredentialInvalid    = errors.New("api key rejected by the model endpoint")
	ErrNoMatch              = errors.New("no matching catalog entry")
	ErrJournalEntryNotFound = errors.New("journal entry not found")
	ErrSecretNotFound       = errors.New("secret not found")
)
