package repository

import (
	"github.com/hospital-ops/ward-staffing-api/internal/models"
	"gorm.io/gorm"
)

// GormWardRepository is a GORM implementation of WardRepository
type GormWardRepository struct {
	db *gorm.DB
}

// NewWardRepository creates a new WardRepository
func NewWardRepository(db *gorm.DB) WardRepository {
	return &GormWardRepository{db: db}
}

// Create creates a new ward
func (r *GormWardRepository) Create(ward *models.Ward) error {
	return r.db.Create(ward).Error
}

// CreateMany inserts multiple wards in a single statement. The insert
// is all-or-nothing: any row violating a constraint fails the batch.
// An empty batch is a no-op success.
func (r *GormWardRepository) CreateMany(wards []models.Ward) error {
	if len(wards) == 0 {
		return nil
	}
	return r.db.Create(&wards).Error
}

// FindByID finds a ward by ID
func (r *GormWardRepository) FindByID(id uint64) (*models.Ward, error) {
	var ward models.Ward
	if err := r.db.First(&ward, id).Error; err != nil {
		return nil, err
	}
	return &ward, nil
}

// FindByNameAndColor finds a ward matching both name and color
func (r *GormWardRepository) FindByNameAndColor(name, color string) (*models.Ward, error) {
	var ward models.Ward
	if err := r.db.Where("ward_name = ? AND ward_color = ?", name, color).First(&ward).Error; err != nil {
		return nil, err
	}
	return &ward, nil
}

// List retrieves all wards
func (r *GormWardRepository) List() ([]models.Ward, error) {
	var wards []models.Ward
	if err := r.db.Order("id ASC").Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

// Delete removes a ward
func (r *GormWardRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Ward{}, id).Error
}

// CountNurses counts the nurses assigned to a ward
func (r *GormWardRepository) CountNurses(wardID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Nurse{}).Where("ward_id = ?", wardID).Count(&count).Error
	return count, err
}
