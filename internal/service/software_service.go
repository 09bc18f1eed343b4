package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrSoftwareNotFound = errors.New("software not found")
)

type SoftwareService struct {
	softwareRepo repository.SoftwareRepository
	keyRepo      repository.KeyRepository
}

func NewSoftwareService(softwareRepo repository.SoftwareRepository, keyRepo repository.KeyRepository) *SoftwareService {
	return &SoftwareService{
		softwareRepo: softwareRepo,
		keyRepo:      keyRepo,
	}
}

type SoftwareInput struct {
	Name         string
	FileType     string
	DownloadURLs []string
}

func (in SoftwareInput) validate() error {
	if in.Name == "" || in.FileType == "" || len(in.DownloadURLs) == 0 {
		return ErrInvalidInput
	}
	for _, url := range in.DownloadURLs {
		if url == "" {
			return ErrInvalidInput
		}
	}
	return nil
}

func (s *SoftwareService) List(ctx context.Context) ([]*domain.Software, error) {
	return s.softwareRepo.List(ctx)
}

func (s *SoftwareService) Create(ctx context.Context, input SoftwareInput) (*domain.Software, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	software := &domain.Software{
		ID:           uuid.New(),
		Name:         input.Name,
		FileType:     input.FileType,
		DownloadURLs: input.DownloadURLs,
		CreatedAt:    time.Now(),
	}

	if err := s.softwareRepo.Create(ctx, software); err != nil {
		return nil, err
	}
	return software, nil
}

func (s *SoftwareService) Update(ctx context.Context, id uuid.UUID, input SoftwareInput) (*domain.Software, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	software, err := s.softwareRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrSoftwareNotFound
		}
		return nil, err
	}

	now := time.Now()
	software.Name = input.Name
	software.FileType = input.FileType
	software.DownloadURLs = input.DownloadURLs
	software.UpdatedAt = &now

	if err := s.softwareRepo.Update(ctx, software); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrSoftwareNotFound
		}
		return nil, err
	}
	return software, nil
}

// Delete removes the software record and every key referencing it. Both
// writes are attempted; if the key cleanup fails after the software record
// is gone, the error is reported and the state is left as is.
func (s *SoftwareService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.softwareRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrSoftwareNotFound
		}
		return err
	}

	if err := s.keyRepo.DeleteBySoftwareID(ctx, id); err != nil {
		return fmt.Errorf("software deleted but key cleanup failed: %w", err)
	}
	return nil
}
