package storage

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"kotibus/models"
)

// UserStore is the registered-user directory, persisted as a JSON array.
type UserStore interface {
	// Create persists a new user. Returns ErrEmailTaken when the email
	// already has a record; no record is created in that case.
	Create(name, email, passwordHash string) (models.UserRecord, error)

	// FindByEmail returns the record for email, or ErrNotFound.
	FindByEmail(email string) (models.UserRecord, error)
}

type fileUserStore struct {
	path  string
	mu    sync.Mutex
	users []models.UserRecord
}

// NewFileUserStore opens (or creates) the user file at path.
func NewFileUserStore(path string) (UserStore, error) {
	s := &fileUserStore{path: path}
	if err := readJSONFile(path, &s.users); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileUserStore) Create(name, email, passwordHash string) (models.UserRecord, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.UserRecord{}, ErrEmailTaken
		}
	}

	now := time.Now()
	user := models.UserRecord{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
	}

	s.users = append(s.users, user)
	if err := writeJSONFile(s.path, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return models.UserRecord{}, err
	}
	return user, nil
}

func (s *fileUserStore) FindByEmail(email string) (models.UserRecord, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.UserRecord{}, ErrNotFound
}
