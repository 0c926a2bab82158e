package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tenant-vet/models"
)

// memoryUserStore keeps users in process memory. Every quota mutation runs
// under a single mutex, which makes admission and decrement one step.
type memoryUserStore struct {
	mu      sync.Mutex
	nextID  int64
	users   map[int64]models.User
	byLogin map[string]int64
	now     func() time.Time
}

// NewMemoryUserStore returns an empty in-memory [UserStore].
func NewMemoryUserStore() UserStore {
	return &memoryUserStore{
		nextID:  1,
		users:   make(map[int64]models.User),
		byLogin: make(map[string]int64),
		now:     time.Now,
	}
}

func (s *memoryUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byLogin[user.Login]; ok {
		return models.User{}, ErrLoginAlreadyExists
	}

	user.UserID = s.nextID
	user.Password = ""
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now().UTC()
	}
	s.nextID++

	s.users[user.UserID] = user
	s.byLogin[user.Login] = user.UserID

	return user, nil
}

func (s *memoryUserStore) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byLogin[login]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return s.users[id], nil
}

func (s *memoryUserStore) GetUser(_ context.Context, userID int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *memoryUserStore) DecrementQuota(_ context.Context, userID int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if user.Unlimited() {
		return user, nil
	}
	if user.ChecksRemaining <= 0 {
		return user, ErrQuotaExhausted
	}

	user.ChecksRemaining--
	s.users[userID] = user

	return user, nil
}

func (s *memoryUserStore) RestoreQuota(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	if !user.Unlimited() {
		user.ChecksRemaining++
		s.users[userID] = user
	}

	return nil
}

func (s *memoryUserStore) SetPlan(_ context.Context, userID int64, tier models.Tier, checksRemaining int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	user.Tier = tier
	user.ChecksRemaining = checksRemaining
	s.users[userID] = user

	return user, nil
}
