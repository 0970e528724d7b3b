package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CREDVAULT_BACK-END/internal/models"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	first := models.Credential{Email: "a@x.com", PasswordHash: "hash-a"}
	second := models.Credential{Email: "b@x.com", PasswordHash: "hash-b"}

	require.NoError(t, s.Create(ctx, &first))
	require.NoError(t, s.Create(ctx, &second))

	assert.Equal(t, int64(1), first.CredentialID)
	assert.Equal(t, int64(2), second.CredentialID)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.Credential{Email: "a@x.com", PasswordHash: "hash"}))

	err := s.Create(ctx, &models.Credential{Email: "a@x.com", PasswordHash: "other"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, s.Count())
}

func TestConcurrentCreateSameEmailSingleWinner(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Create(ctx, &models.Credential{Email: "race@x.com", PasswordHash: "hash"})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, s.Count())
}

func TestGetByIDNotFound(t *testing.T) {
	s := NewInMemoryCredentialStore()

	_, err := s.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByEmailIsCaseSensitive(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.Credential{Email: "a@x.com", PasswordHash: "hash"}))

	_, err := s.GetByEmail(ctx, "A@X.COM")
	require.ErrorIs(t, err, ErrNotFound)

	cred, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", cred.Email)
}

func TestAttachProfileJoinsOnRead(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	cred := models.Credential{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, s.Create(ctx, &cred))

	first := "Ada"
	last := "Lovelace"
	dob := time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.AttachProfile(cred.CredentialID, models.Profile{
		FirstName:   &first,
		LastName:    &last,
		DateOfBirth: &dob,
	}))

	got, err := s.GetByID(ctx, cred.CredentialID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, cred.CredentialID, got.Profile.CredentialID)
	assert.Equal(t, "Ada", *got.Profile.FirstName)

	// Credentials without a profile keep a nil Profile
	bare := models.Credential{Email: "b@x.com", PasswordHash: "hash"}
	require.NoError(t, s.Create(ctx, &bare))
	got, err = s.GetByID(ctx, bare.CredentialID)
	require.NoError(t, err)
	assert.Nil(t, got.Profile)
}

func TestAttachProfileUnknownCredential(t *testing.T) {
	s := NewInMemoryCredentialStore()

	err := s.AttachProfile(99, models.Profile{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersByID(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		require.NoError(t, s.Create(ctx, &models.Credential{Email: email, PasswordHash: "hash"}))
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0].CredentialID)
	assert.Equal(t, int64(3), list[2].CredentialID)
}

func TestListReturnsCopies(t *testing.T) {
	s := NewInMemoryCredentialStore()
	ctx := context.Background()

	cred := models.Credential{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, s.Create(ctx, &cred))
	require.NoError(t, s.AttachProfile(cred.CredentialID, models.Profile{}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	list[0].Profile.FirstName = ptr("mutated")

	got, err := s.GetByID(ctx, cred.CredentialID)
	require.NoError(t, err)
	assert.Nil(t, got.Profile.FirstName)
}

func ptr(s string) *string { return &s }
