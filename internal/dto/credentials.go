package dto

import (
	"time"

	"CREDVAULT_BACK-END/internal/models"
)

// CredentialResponse represents credential data in API responses. PasswordHash
// is the stored bcrypt hash here, never the raw password.
type CredentialResponse struct {
	CredentialID int64            `json:"credentialID"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"passwordHash"`
	Profile      *ProfileResponse `json:"profile"`
}

// ProfileResponse represents profile data in API responses. It deliberately has
// no credential object, only the owning id, so the output graph is acyclic.
type ProfileResponse struct {
	ProfileID    int64   `json:"profileID"`
	CredentialID int64   `json:"credentialID"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	DateOfBirth  *string `json:"dateOfBirth"` // "YYYY-MM-DD"
}

// NewCredentialResponse converts a credential row to its API representation
func NewCredentialResponse(c models.Credential) CredentialResponse {
	resp := CredentialResponse{
		CredentialID: c.CredentialID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
	if c.Profile != nil {
		resp.Profile = &ProfileResponse{
			ProfileID:    c.Profile.ProfileID,
			CredentialID: c.Profile.CredentialID,
			FirstName:    c.Profile.FirstName,
			LastName:     c.Profile.LastName,
			DateOfBirth: func() *string {
				if c.Profile.DateOfBirth != nil {
					s := c.Profile.DateOfBirth.Format(time.DateOnly)
					return &s
				}
				return nil
			}(),
		}
	}
	return resp
}
