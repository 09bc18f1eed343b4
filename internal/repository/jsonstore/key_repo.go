package jsonstore

import (
	"context"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/google/uuid"
)

type keyRepository struct {
	store *Store
}

func NewKeyRepository(store *Store) *keyRepository {
	return &keyRepository{store: store}
}

func (r *keyRepository) List(ctx context.Context) ([]*domain.Key, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.load(), nil
}

func (r *keyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Key, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, key := range r.load() {
		if key.ID == id {
			return key, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *keyRepository) GetByCode(ctx context.Context, code string) (*domain.Key, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, key := range r.load() {
		if key.Code == code {
			return key, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *keyRepository) CreateBatch(ctx context.Context, keys []*domain.Key) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.load()
	items = append(items, keys...)
	return r.store.writeDoc(keysFile, items)
}

func (r *keyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.load()
	remaining := make([]*domain.Key, 0, len(items))
	for _, key := range items {
		if key.ID != id {
			remaining = append(remaining, key)
		}
	}
	if len(remaining) == len(items) {
		return domain.ErrNotFound
	}
	return r.store.writeDoc(keysFile, remaining)
}

func (r *keyRepository) DeleteBySoftwareID(ctx context.Context, softwareID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.load()
	remaining := make([]*domain.Key, 0, len(items))
	for _, key := range items {
		if key.SoftwareID != softwareID {
			remaining = append(remaining, key)
		}
	}
	if len(remaining) == len(items) {
		return nil
	}
	return r.store.writeDoc(keysFile, remaining)
}

func (r *keyRepository) load() []*domain.Key {
	items := []*domain.Key{}
	r.store.readCollection(keysFile, &items)
	return items
}
