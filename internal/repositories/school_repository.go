package repositories

import (
	"context"
	"errors"
	"fmt"

	"school-fee-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSchoolNotFound = errors.New("school not found")
)

type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *gorm.DB) SchoolRepositoryInterface {
	return &schoolRepository{db: db}
}

// ListSchools returns all schools ordered by name
func (r *schoolRepository) ListSchools(ctx context.Context) ([]models.School, error) {
	schools := make([]models.School, 0)
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&schools).Error; err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}

func (r *schoolRepository) GetByID(ctx context.Context, id string) (*models.School, error) {
	var school models.School
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}
	return &school, nil
}

func (r *schoolRepository) Create(ctx context.Context, school *models.School) error {
	if school == nil {
		return errors.New("school cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(school).Error; err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	return nil
}

func (r *schoolRepository) EnsureExists(ctx context.Context, schools []models.School) error {
	if len(schools) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&schools).Error; err != nil {
		return fmt.Errorf("failed to upsert schools: %w", err)
	}
	return nil
}
