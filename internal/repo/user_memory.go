package repo

import (
	"sync"
	"time"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

type InMemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}}
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == u.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	u.ID = len(r.users) + 1
	u.CreatedAt = time.Now().UTC()
	r.users = append(r.users, u)
	return u, nil
}
