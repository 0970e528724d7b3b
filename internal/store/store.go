package store

import (
	"context"
	"errors"

	"CREDVAULT_BACK-END/internal/models"
)

var (
	// ErrNotFound is returned when no credential matches the lookup.
	ErrNotFound = errors.New("credential not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email
	// constraint. The constraint is the authoritative guard against concurrent
	// registrations; EmailExists is only a fast path.
	ErrDuplicateEmail = errors.New("email already registered")
)

// CredentialStore is the persistence boundary for credentials and their
// joined profiles.
type CredentialStore interface {
	List(ctx context.Context) ([]models.Credential, error)
	GetByID(ctx context.Context, id int64) (*models.Credential, error)
	GetByEmail(ctx context.Context, email string) (*models.Credential, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, cred *models.Credential) error
}
