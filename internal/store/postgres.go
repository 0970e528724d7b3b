package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"CREDVAULT_BACK-END/internal/models"
)

const uniqueViolation = "23505"

// PostgresCredentialStore implements CredentialStore on top of a pgx pool.
type PostgresCredentialStore struct {
	db *pgxpool.Pool
}

// NewPostgresCredentialStore creates a new PostgresCredentialStore instance
func NewPostgresCredentialStore(db *pgxpool.Pool) *PostgresCredentialStore {
	return &PostgresCredentialStore{db: db}
}

const credentialColumns = `c.credential_id, c.email, c.password_hash,
	 p.profile_id, p.credential_id, p.first_name, p.last_name, p.date_of_birth`

func scanCredential(row pgx.Row) (*models.Credential, error) {
	var (
		cred         models.Credential
		profileID    *int64
		profileOwner *int64
		firstName    *string
		lastName     *string
		dateOfBirth  *time.Time
	)

	err := row.Scan(&cred.CredentialID, &cred.Email, &cred.PasswordHash,
		&profileID, &profileOwner, &firstName, &lastName, &dateOfBirth)
	if err != nil {
		return nil, err
	}

	// profile_id is NULL when the left join found no profile row
	if profileID != nil {
		cred.Profile = &models.Profile{
			ProfileID:    *profileID,
			CredentialID: *profileOwner,
			FirstName:    firstName,
			LastName:     lastName,
			DateOfBirth:  dateOfBirth,
		}
	}
	return &cred, nil
}

// List returns all credentials with their joined profiles
func (s *PostgresCredentialStore) List(ctx context.Context) ([]models.Credential, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+credentialColumns+`
		 FROM credentials c
		 LEFT JOIN profiles p ON p.credential_id = c.credential_id
		 ORDER BY c.credential_id`)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	credentials := []models.Credential{}
	for rows.Next() {
		cred, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		credentials = append(credentials, *cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return credentials, nil
}

// GetByID returns one credential with its joined profile, or ErrNotFound
func (s *PostgresCredentialStore) GetByID(ctx context.Context, id int64) (*models.Credential, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+credentialColumns+`
		 FROM credentials c
		 LEFT JOIN profiles p ON p.credential_id = c.credential_id
		 WHERE c.credential_id = $1`, id)

	cred, err := scanCredential(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get credential by id: %w", err)
	}
	return cred, nil
}

// GetByEmail returns the first credential matching the email (exact,
// case-sensitive), or ErrNotFound
func (s *PostgresCredentialStore) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+credentialColumns+`
		 FROM credentials c
		 LEFT JOIN profiles p ON p.credential_id = c.credential_id
		 WHERE c.email = $1
		 LIMIT 1`, email)

	cred, err := scanCredential(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get credential by email: %w", err)
	}
	return cred, nil
}

// EmailExists reports whether a credential with the email already exists
func (s *PostgresCredentialStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM credentials WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// Create inserts a new credential and fills in its assigned id. A concurrent
// insert with the same email surfaces as ErrDuplicateEmail.
func (s *PostgresCredentialStore) Create(ctx context.Context, cred *models.Credential) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO credentials (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING credential_id`,
		cred.Email, cred.PasswordHash).Scan(&cred.CredentialID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}
