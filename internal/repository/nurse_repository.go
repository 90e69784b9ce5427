package repository

import (
	"strings"

	"github.com/hospital-ops/ward-staffing-api/internal/database"
	"github.com/hospital-ops/ward-staffing-api/internal/models"
	"gorm.io/gorm"
)

// GormNurseRepository is a GORM implementation of NurseRepository
type GormNurseRepository struct {
	db *gorm.DB
}

// NewNurseRepository creates a new NurseRepository
func NewNurseRepository(db *gorm.DB) NurseRepository {
	return &GormNurseRepository{db: db}
}

// Create creates a new nurse
func (r *GormNurseRepository) Create(nurse *models.Nurse) error {
	return r.db.Create(nurse).Error
}

// CreateMany inserts multiple nurses in a single statement. The insert
// is all-or-nothing: any row violating a constraint fails the batch.
// An empty batch is a no-op success.
func (r *GormNurseRepository) CreateMany(nurses []models.Nurse) error {
	if len(nurses) == 0 {
		return nil
	}
	return r.db.Create(&nurses).Error
}

// FindByID finds a nurse by ID with optional preloading
func (r *GormNurseRepository) FindByID(id uint64, preload ...string) (*models.Nurse, error) {
	var nurse models.Nurse
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&nurse, id).Error; err != nil {
		return nil, err
	}
	return &nurse, nil
}

// FindByEmail finds a nurse by email
func (r *GormNurseRepository) FindByEmail(email string) (*models.Nurse, error) {
	var nurse models.Nurse
	if err := r.db.Where("email = ?", email).First(&nurse).Error; err != nil {
		return nil, err
	}
	return &nurse, nil
}

// List retrieves all nurses, each with its ward's name and color.
func (r *GormNurseRepository) List() ([]models.Nurse, error) {
	var nurses []models.Nurse
	err := r.db.
		Preload("Ward", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "ward_name", "ward_color")
		}).
		Order("employee_id ASC").
		Find(&nurses).Error
	if err != nil {
		return nil, err
	}
	return nurses, nil
}

// Update persists changes to a nurse
func (r *GormNurseRepository) Update(nurse *models.Nurse) error {
	return r.db.Save(nurse).Error
}

// Delete removes a nurse
func (r *GormNurseRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Nurse{}, id).Error
}

// Filter retrieves a page of nurses matching the filter along with the
// total match count. Name matching uses LOWER(...) LIKE so behavior is
// identical across the supported dialects. Supplying WardName makes
// the ward join an inner join, so nurses whose ward does not match (or
// no longer exists) are excluded; without it the ward is preloaded and
// unresolvable wards are left nil.
func (r *GormNurseRepository) Filter(filter NurseFilter) ([]models.Nurse, int64, error) {
	query := r.db.Model(&models.Nurse{})

	if filter.FullName != "" {
		pattern := "%" + strings.ToLower(filter.FullName) + "%"
		query = query.Where("LOWER(nurses.first_name) LIKE ? OR LOWER(nurses.last_name) LIKE ?", pattern, pattern)
	}

	if filter.WardName != "" {
		pattern := "%" + strings.ToLower(filter.WardName) + "%"
		query = query.
			Joins("JOIN wards ON wards.id = nurses.ward_id").
			Where("LOWER(wards.ward_name) LIKE ?", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var nurses []models.Nurse
	err := query.
		Preload("Ward", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "ward_name", "ward_color")
		}).
		Order("nurses.employee_id ASC").
		Scopes(database.Paginate(filter.Page, filter.Limit)).
		Find(&nurses).Error
	if err != nil {
		return nil, 0, err
	}

	return nurses, total, nil
}
