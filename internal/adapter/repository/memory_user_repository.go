package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryUserRepository struct {
	store *Store
}

func NewMemoryUserRepository(store *Store) repository.UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Username and email are unique, compared exactly as stored.
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return errors.Validation("Username is already taken", nil)
		}
		if existing.Email == user.Email {
			return errors.Validation("Email is already registered", nil)
		}
	}

	now := time.Now()
	user.ID = s.nextID("user")
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entity.User, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.User, 0, len(s.users))
	term := strings.ToLower(search)
	for _, user := range s.users {
		if term != "" {
			haystack := strings.ToLower(user.Username + " " + user.FullName + " " + user.Email)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		matched = append(matched, user)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	matched = paginateUsers(matched, limit, offset)

	out := make([]*entity.User, len(matched))
	for i := range matched {
		u := matched[i]
		out[i] = &u
	}
	return out, total, nil
}

func paginateUsers(users []entity.User, limit, offset int) []entity.User {
	if offset >= len(users) {
		return nil
	}
	users = users[offset:]
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}
	return users
}
