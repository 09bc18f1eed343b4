package jsonstore

import (
	"context"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/google/uuid"
)

type softwareRepository struct {
	store *Store
}

func NewSoftwareRepository(store *Store) *softwareRepository {
	return &softwareRepository{store: store}
}

func (r *softwareRepository) List(ctx context.Context) ([]*domain.Software, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.load(), nil
}

func (r *softwareRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Software, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, sw := range r.load() {
		if sw.ID == id {
			return sw, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *softwareRepository) Create(ctx context.Context, software *domain.Software) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.load()
	items = append(items, software)
	return r.store.writeDoc(softwareFile, items)
}

func (r *softwareRepository) Update(ctx context.Context, software *domain.Software) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.load()
	for i, sw := range items {
		if sw.ID == software.ID {
			items[i] = software
			return r.store.writeDoc(softwareFile, items)
		}
	}
	return domain.ErrNotFound
}

func (r *softwareRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := r.load()
	remaining := make([]*domain.Software, 0, len(items))
	for _, sw := range items {
		if sw.ID != id {
			remaining = append(remaining, sw)
		}
	}
	if len(remaining) == len(items) {
		return domain.ErrNotFound
	}
	return r.store.writeDoc(softwareFile, remaining)
}

// load returns the current snapshot, empty when the document is unreadable.
// Callers hold the store mutex.
func (r *softwareRepository) load() []*domain.Software {
	items := []*domain.Software{}
	r.store.readCollection(softwareFile, &items)
	return items
}
