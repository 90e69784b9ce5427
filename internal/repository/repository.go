package repository

import (
	"github.com/hospital-ops/ward-staffing-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// WardRepository defines the interface for ward data access
type WardRepository interface {
	// Create creates a new ward
	Create(ward *models.Ward) error

	// CreateMany inserts multiple wards in a single statement
	CreateMany(wards []models.Ward) error

	// FindByID finds a ward by ID
	FindByID(id uint64) (*models.Ward, error)

	// FindByNameAndColor finds a ward matching both name and color
	FindByNameAndColor(name, color string) (*models.Ward, error)

	// List retrieves all wards
	List() ([]models.Ward, error)

	// Delete removes a ward
	Delete(id uint64) error

	// CountNurses counts the nurses assigned to a ward
	CountNurses(wardID uint64) (int64, error)
}

// NurseRepository defines the interface for nurse data access
type NurseRepository interface {
	// Create creates a new nurse
	Create(nurse *models.Nurse) error

	// CreateMany inserts multiple nurses in a single statement
	CreateMany(nurses []models.Nurse) error

	// FindByID finds a nurse by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Nurse, error)

	// FindByEmail finds a nurse by email
	FindByEmail(email string) (*models.Nurse, error)

	// List retrieves all nurses with their ward name and color
	List() ([]models.Nurse, error)

	// Update persists changes to a nurse
	Update(nurse *models.Nurse) error

	// Delete removes a nurse
	Delete(id uint64) error

	// Filter retrieves a page of nurses matching the filter along with
	// the total match count
	Filter(filter NurseFilter) ([]models.Nurse, int64, error)
}

// NurseFilter holds search and pagination options for listing nurses.
// FullName matches either first or last name, case-insensitively.
// WardName, when set, restricts results to nurses whose ward name
// matches and turns the ward join into an inner join.
type NurseFilter struct {
	FullName string
	WardName string
	Page     int
	Limit    int
}
