package jsonstore

import (
	"context"
	"os"

	"github.com/Gav1n0112/keya/internal/domain"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *userRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Get(ctx context.Context) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var user domain.User
	if err := r.store.readDoc(userFile, &user); err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.writeDoc(userFile, user)
}
