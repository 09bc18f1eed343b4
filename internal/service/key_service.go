package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/repository"
	"github.com/google/uuid"
)

var ErrKeyNotFound = errors.New("key not found")

// codeAlphabet is the 36-symbol alphabet license codes are drawn from.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codeGroups are the dash-separated group lengths of a license code.
var codeGroups = []int{4, 4, 3}

type KeyService struct {
	keyRepo      repository.KeyRepository
	softwareRepo repository.SoftwareRepository
}

func NewKeyService(keyRepo repository.KeyRepository, softwareRepo repository.SoftwareRepository) *KeyService {
	return &KeyService{
		keyRepo:      keyRepo,
		softwareRepo: softwareRepo,
	}
}

// Generate creates count fresh keys for the given software record and
// persists them in one batch. When validityDays > 0 each key expires that
// many days from now; otherwise the keys never expire. Codes are not
// checked for collisions against existing keys: the 36^11 space makes a
// clash unlikely enough to accept.
func (s *KeyService) Generate(ctx context.Context, softwareID uuid.UUID, count, validityDays int) ([]*domain.Key, error) {
	if count <= 0 {
		return nil, ErrInvalidInput
	}

	if _, err := s.softwareRepo.GetByID(ctx, softwareID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrSoftwareNotFound
		}
		return nil, err
	}

	now := time.Now()
	var validUntil *time.Time
	if validityDays > 0 {
		t := now.AddDate(0, 0, validityDays)
		validUntil = &t
	}

	keys := make([]*domain.Key, 0, count)
	for i := 0; i < count; i++ {
		code, err := generateCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}
		keys = append(keys, &domain.Key{
			ID:         uuid.New(),
			Code:       code,
			SoftwareID: softwareID,
			Used:       false,
			CreatedAt:  now,
			ValidUntil: validUntil,
		})
	}

	if err := s.keyRepo.CreateBatch(ctx, keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// List returns every key joined with its software record, in storage
// order. A dangling software reference yields a nil Software.
func (s *KeyService) List(ctx context.Context) ([]*domain.KeyWithSoftware, error) {
	keys, err := s.keyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	software, err := s.softwareRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*domain.Software, len(software))
	for _, sw := range software {
		byID[sw.ID] = sw
	}

	joined := make([]*domain.KeyWithSoftware, 0, len(keys))
	for _, key := range keys {
		joined = append(joined, &domain.KeyWithSoftware{
			Key:      *key,
			Software: byID[key.SoftwareID],
		})
	}
	return joined, nil
}

func (s *KeyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.keyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	}
	return nil
}

// VerificationResult is the outcome of a redemption check.
type VerificationResult struct {
	Valid      bool
	Used       bool
	Expired    bool
	Software   *domain.Software
	ValidUntil *time.Time
}

// Verify looks up the trimmed code and classifies it as missing, already
// used, expired or valid. It never mutates the key: the used flag stays
// false and a valid key can be verified any number of times.
func (s *KeyService) Verify(ctx context.Context, code string) (*VerificationResult, error) {
	code = strings.TrimSpace(code)

	key, err := s.keyRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	if key.Used {
		return &VerificationResult{Used: true}, nil
	}
	if key.Expired(time.Now()) {
		return &VerificationResult{Expired: true}, nil
	}

	software, err := s.softwareRepo.GetByID(ctx, key.SoftwareID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return &VerificationResult{
		Valid:      true,
		Software:   software,
		ValidUntil: key.ValidUntil,
	}, nil
}

func generateCode() (string, error) {
	parts := make([]string, 0, len(codeGroups))
	max := big.NewInt(int64(len(codeAlphabet)))
	for _, length := range codeGroups {
		buf := make([]byte, length)
		for i := range buf {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", err
			}
			buf[i] = codeAlphabet[n.Int64()]
		}
		parts = append(parts, string(buf))
	}
	return strings.Join(parts, "-"), nil
}
