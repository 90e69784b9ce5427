package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hospital-ops/ward-staffing-api/internal/models"
	"github.com/hospital-ops/ward-staffing-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrWardExists       = errors.New("ward already exists")
	ErrInvalidWardColor = errors.New("invalid ward color")
	ErrWardNotFound     = errors.New("ward not found")
	ErrWardHasNurses    = errors.New("ward has assigned nurses")
)

// WardService handles ward business logic.
type WardService struct {
	wardRepo repository.WardRepository
}

// NewWardService creates a new WardService.
func NewWardService(wardRepo repository.WardRepository) *WardService {
	return &WardService{
		wardRepo: wardRepo,
	}
}

// CreateWard persists a new ward. A ward duplicating an existing
// (name, color) pair is rejected; the same name with a different color
// is allowed. The color must be one of the allowed palette,
// case-insensitively; the stored value keeps the caller's casing.
func (s *WardService) CreateWard(name, color string) (*models.Ward, error) {
	if _, err := s.wardRepo.FindByNameAndColor(name, color); err == nil {
		return nil, ErrWardExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check ward: %w", err)
	}

	if !isAllowedWardColor(color) {
		return nil, ErrInvalidWardColor
	}

	ward := &models.Ward{
		WardName:  name,
		WardColor: color,
	}

	if err := s.wardRepo.Create(ward); err != nil {
		return nil, fmt.Errorf("failed to create ward: %w", err)
	}

	return ward, nil
}

// ListWards returns all wards, unpaginated.
func (s *WardService) ListWards() ([]models.Ward, error) {
	return s.wardRepo.List()
}

// DeleteWard removes a ward. Wards with assigned nurses cannot be
// deleted; reassign or remove the nurses first.
func (s *WardService) DeleteWard(id uint64) error {
	if _, err := s.wardRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWardNotFound
		}
		return fmt.Errorf("failed to find ward: %w", err)
	}

	count, err := s.wardRepo.CountNurses(id)
	if err != nil {
		return fmt.Errorf("failed to count nurses: %w", err)
	}
	if count > 0 {
		return ErrWardHasNurses
	}

	return s.wardRepo.Delete(id)
}

// CreateManyWards inserts a batch of wards in one statement. Any row
// violating a constraint fails the whole batch.
func (s *WardService) CreateManyWards(wards []models.Ward) ([]models.Ward, error) {
	if err := s.wardRepo.CreateMany(wards); err != nil {
		return nil, fmt.Errorf("failed to create wards: %w", err)
	}
	return wards, nil
}

func isAllowedWardColor(color string) bool {
	for _, allowed := range models.AllowedWardColors {
		if strings.EqualFold(color, string(allowed)) {
			return true
		}
	}
	return false
}
