package models

import "time"

// Credential represents a stored email + password-hash pair identifying one account.
// The stored bcrypt hash is serialized on read endpoints under the same wire name the
// register/login payloads use for the raw password.
type Credential struct {
	CredentialID int64    `json:"credentialID" db:"credential_id"`
	Email        string   `json:"email" db:"email"`
	PasswordHash string   `json:"passwordHash" db:"password_hash"`
	Profile      *Profile `json:"profile"` // nil when no profile row exists
}

// Profile holds the optional personal details linked one-to-one to a Credential.
// It carries the owning credential id but never a Credential object, so serialization
// cannot re-enter the cycle.
type Profile struct {
	ProfileID    int64      `json:"profileID" db:"profile_id"`
	CredentialID int64      `json:"credentialID" db:"credential_id"`
	FirstName    *string    `json:"firstName" db:"first_name"`
	LastName     *string    `json:"lastName" db:"last_name"`
	DateOfBirth  *time.Time `json:"dateOfBirth" db:"date_of_birth"`
}
