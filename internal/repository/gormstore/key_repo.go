package gormstore

import (
	"context"
	"errors"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type keyRepository struct {
	db *gorm.DB
}

func NewKeyRepository(db *gorm.DB) *keyRepository {
	return &keyRepository{db: db}
}

func (r *keyRepository) List(ctx context.Context) ([]*domain.Key, error) {
	var items []*domain.Key
	err := r.db.WithContext(ctx).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *keyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Key, error) {
	var key domain.Key
	err := r.db.WithContext(ctx).First(&key, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &key, nil
}

func (r *keyRepository) GetByCode(ctx context.Context, code string) (*domain.Key, error) {
	var key domain.Key
	err := r.db.WithContext(ctx).First(&key, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &key, nil
}

func (r *keyRepository) CreateBatch(ctx context.Context, keys []*domain.Key) error {
	return r.db.WithContext(ctx).Create(keys).Error
}

func (r *keyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Key{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *keyRepository) DeleteBySoftwareID(ctx context.Context, softwareID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Key{}, "software_id = ?", softwareID).Error
}
