package store

import (
	"context"
	"sort"
	"sync"

	"CREDVAULT_BACK-END/internal/models"
)

// InMemoryCredentialStore is a mutex-guarded CredentialStore used in tests and
// local development. Uniqueness is enforced inside the lock, so it gives the
// same single-winner guarantee under concurrent Create calls as the database
// constraint does.
type InMemoryCredentialStore struct {
	mu            sync.Mutex
	credentials   map[int64]models.Credential
	byEmail       map[string]int64
	nextID        int64
	nextProfileID int64
}

// NewInMemoryCredentialStore creates an empty in-memory store
func NewInMemoryCredentialStore() *InMemoryCredentialStore {
	return &InMemoryCredentialStore{
		credentials:   make(map[int64]models.Credential),
		byEmail:       make(map[string]int64),
		nextID:        1,
		nextProfileID: 1,
	}
}

func (s *InMemoryCredentialStore) List(ctx context.Context) ([]models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Credential, 0, len(s.credentials))
	for _, cred := range s.credentials {
		out = append(out, cloneCredential(cred))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CredentialID < out[j].CredentialID })
	return out, nil
}

func (s *InMemoryCredentialStore) GetByID(ctx context.Context, id int64) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.credentials[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := cloneCredential(cred)
	return &c, nil
}

func (s *InMemoryCredentialStore) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	c := cloneCredential(s.credentials[id])
	return &c, nil
}

func (s *InMemoryCredentialStore) EmailExists(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byEmail[email]
	return ok, nil
}

func (s *InMemoryCredentialStore) Create(ctx context.Context, cred *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[cred.Email]; ok {
		return ErrDuplicateEmail
	}

	cred.CredentialID = s.nextID
	s.nextID++
	s.credentials[cred.CredentialID] = cloneCredential(*cred)
	s.byEmail[cred.Email] = cred.CredentialID
	return nil
}

// Count returns the number of stored credentials. Test helper.
func (s *InMemoryCredentialStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.credentials)
}

// AttachProfile seeds a profile for an existing credential. No exposed route
// creates profiles, so tests use this to exercise the join path.
func (s *InMemoryCredentialStore) AttachProfile(credentialID int64, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.credentials[credentialID]
	if !ok {
		return ErrNotFound
	}
	profile.ProfileID = s.nextProfileID
	s.nextProfileID++
	profile.CredentialID = credentialID
	cred.Profile = &profile
	s.credentials[credentialID] = cred
	return nil
}

func cloneCredential(c models.Credential) models.Credential {
	if c.Profile != nil {
		p := *c.Profile
		c.Profile = &p
	}
	return c
}
