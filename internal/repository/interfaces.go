package repository

import (
	"context"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/google/uuid"
)

// UserRepository holds the singleton administrator record.
type UserRepository interface {
	Get(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

type SoftwareRepository interface {
	List(ctx context.Context) ([]*domain.Software, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Software, error)
	Create(ctx context.Context, software *domain.Software) error
	Update(ctx context.Context, software *domain.Software) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type KeyRepository interface {
	List(ctx context.Context) ([]*domain.Key, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Key, error)
	GetByCode(ctx context.Context, code string) (*domain.Key, error)
	CreateBatch(ctx context.Context, keys []*domain.Key) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySoftwareID(ctx context.Context, softwareID uuid.UUID) error
}

type Repositories struct {
	User     UserRepository
	Software SoftwareRepository
	Key      KeyRepository
}
