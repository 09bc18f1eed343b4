package gormstore

import (
	"context"
	"errors"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type softwareRepository struct {
	db *gorm.DB
}

func NewSoftwareRepository(db *gorm.DB) *softwareRepository {
	return &softwareRepository{db: db}
}

func (r *softwareRepository) List(ctx context.Context) ([]*domain.Software, error) {
	var items []*domain.Software
	err := r.db.WithContext(ctx).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *softwareRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Software, error) {
	var software domain.Software
	err := r.db.WithContext(ctx).First(&software, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &software, nil
}

func (r *softwareRepository) Create(ctx context.Context, software *domain.Software) error {
	return r.db.WithContext(ctx).Create(software).Error
}

func (r *softwareRepository) Update(ctx context.Context, software *domain.Software) error {
	result := r.db.WithContext(ctx).Model(&domain.Software{}).
		Where("id = ?", software.ID).
		Select("Name", "FileType", "DownloadURLs", "UpdatedAt").
		Updates(software)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *softwareRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Software{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
