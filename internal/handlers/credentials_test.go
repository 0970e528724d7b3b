package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CREDVAULT_BACK-END/internal/models"
)

func TestListEmpty(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/credentials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListIncludesJoinedProfile(t *testing.T) {
	mux, s := newTestMux(t)

	require.Equal(t, http.StatusOK, register(t, mux, "a@x.com", "secret1").Code)
	require.Equal(t, http.StatusOK, register(t, mux, "b@x.com", "secret2").Code)

	first := "Ada"
	dob := time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.AttachProfile(1, models.Profile{FirstName: &first, DateOfBirth: &dob}))

	rec := doJSON(t, mux, http.MethodGet, "/api/credentials", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []struct {
		CredentialID int64  `json:"credentialID"`
		Email        string `json:"email"`
		Profile      *struct {
			ProfileID    int64   `json:"profileID"`
			CredentialID int64   `json:"credentialID"`
			FirstName    *string `json:"firstName"`
			DateOfBirth  *string `json:"dateOfBirth"`
		} `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 2)

	require.NotNil(t, list[0].Profile)
	assert.Equal(t, int64(1), list[0].Profile.CredentialID)
	assert.Equal(t, "Ada", *list[0].Profile.FirstName)
	assert.Equal(t, "1815-12-10", *list[0].Profile.DateOfBirth)
	assert.Nil(t, list[1].Profile)
}

func TestGetByID(t *testing.T) {
	mux, _ := newTestMux(t)

	require.Equal(t, http.StatusOK, register(t, mux, "a@x.com", "secret1").Code)

	rec := doJSON(t, mux, http.MethodGet, "/api/credentials/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cred struct {
		CredentialID int64           `json:"credentialID"`
		Email        string          `json:"email"`
		PasswordHash string          `json:"passwordHash"`
		Profile      json.RawMessage `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cred))
	assert.Equal(t, int64(1), cred.CredentialID)
	assert.Equal(t, "a@x.com", cred.Email)
	assert.NotEmpty(t, cred.PasswordHash, "stored hash is part of the read contract")
	assert.Equal(t, "null", string(cred.Profile))
}

func TestGetByIDNotFound(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/credentials/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetByIDInvalid(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/credentials/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// The serialized profile must not carry a credential object back-reference,
// only the owning id, so the output graph is acyclic.
func TestProfileSerializationHasNoBackReference(t *testing.T) {
	mux, s := newTestMux(t)

	require.Equal(t, http.StatusOK, register(t, mux, "a@x.com", "secret1").Code)
	require.NoError(t, s.AttachProfile(1, models.Profile{}))

	rec := doJSON(t, mux, http.MethodGet, "/api/credentials/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))

	var profile map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["profile"], &profile))

	assert.NotContains(t, profile, "credential")
	assert.ElementsMatch(t,
		[]string{"profileID", "credentialID", "firstName", "lastName", "dateOfBirth"},
		keys(profile))
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
