package services

import (
	"errors"
	"fmt"

	"github.com/hospital-ops/ward-staffing-api/internal/models"
	"github.com/hospital-ops/ward-staffing-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNurseNotFound   = errors.New("nurse not found")
	ErrNurseEmailTaken = errors.New("nurse email already in use")
)

// NurseService handles nurse business logic.
type NurseService struct {
	nurseRepo repository.NurseRepository
	wardRepo  repository.WardRepository
}

// NewNurseService creates a new NurseService.
func NewNurseService(nurseRepo repository.NurseRepository, wardRepo repository.WardRepository) *NurseService {
	return &NurseService{
		nurseRepo: nurseRepo,
		wardRepo:  wardRepo,
	}
}

// CreateNurseInput represents the fields needed to create a nurse.
type CreateNurseInput struct {
	FirstName string
	LastName  string
	Email     string
	WardID    uint64
}

// CreateNurse persists a new nurse after confirming the referenced
// ward exists and the email is unused, then returns the record joined
// with its ward. The email check is a fast path; the unique index on
// nurses.email is the actual guarantee.
func (s *NurseService) CreateNurse(input CreateNurseInput) (*models.Nurse, error) {
	if _, err := s.wardRepo.FindByID(input.WardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWardNotFound
		}
		return nil, fmt.Errorf("failed to find ward: %w", err)
	}

	if _, err := s.nurseRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrNurseEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	nurse := &models.Nurse{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		WardID:    input.WardID,
	}

	if err := s.nurseRepo.Create(nurse); err != nil {
		return nil, fmt.Errorf("failed to create nurse: %w", err)
	}

	return s.nurseRepo.FindByID(nurse.EmployeeID, "Ward")
}

// ListNurses returns all nurses joined with their ward, unpaginated.
func (s *NurseService) ListNurses() ([]models.Nurse, error) {
	return s.nurseRepo.List()
}

// GetNurse retrieves a nurse with its ward.
func (s *NurseService) GetNurse(id uint64) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.FindByID(id, "Ward")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to find nurse: %w", err)
	}
	return nurse, nil
}

// UpdateNurseInput represents the fields applied by an update. WardID
// is optional; when supplied the target ward must exist.
type UpdateNurseInput struct {
	FirstName string
	LastName  string
	Email     string
	WardID    *uint64
}

// UpdateNurse applies a partial update and returns the refreshed
// record joined with its ward.
func (s *NurseService) UpdateNurse(id uint64, input UpdateNurseInput) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to find nurse: %w", err)
	}

	if input.WardID != nil {
		if _, err := s.wardRepo.FindByID(*input.WardID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWardNotFound
			}
			return nil, fmt.Errorf("failed to find ward: %w", err)
		}
		nurse.WardID = *input.WardID
	}

	nurse.FirstName = input.FirstName
	nurse.LastName = input.LastName
	nurse.Email = input.Email

	if err := s.nurseRepo.Update(nurse); err != nil {
		return nil, fmt.Errorf("failed to update nurse: %w", err)
	}

	return s.nurseRepo.FindByID(id, "Ward")
}

// DeleteNurse removes a nurse and returns the deleted record.
func (s *NurseService) DeleteNurse(id uint64) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to find nurse: %w", err)
	}

	if err := s.nurseRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete nurse: %w", err)
	}

	return nurse, nil
}

// FilterNurses returns a page of nurses matching the filter and the
// total match count.
func (s *NurseService) FilterNurses(filter repository.NurseFilter) ([]models.Nurse, int64, error) {
	return s.nurseRepo.Filter(filter)
}

// CreateManyNurses inserts a batch of nurses in one statement. Any row
// violating a constraint fails the whole batch.
func (s *NurseService) CreateManyNurses(nurses []models.Nurse) ([]models.Nurse, error) {
	if err := s.nurseRepo.CreateMany(nurses); err != nil {
		return nil, fmt.Errorf("failed to create nurses: %w", err)
	}
	return nurses, nil
}
