package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentlink/shortlist-engine/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	// FindCandidatesByProject returns the profiles of everyone who applied
	// to the project, in application order. An empty slice is not an error
	// here; the shortlist service decides whether that is fatal.
	FindCandidatesByProject(projectID uuid.UUID) ([]models.CandidateProfile, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindCandidatesByProject(projectID uuid.UUID) ([]models.CandidateProfile, error) {
	var candidates []models.CandidateProfile
	err := r.db.
		Joins("JOIN applications ON applications.candidate_id = candidates.id").
		Where("applications.project_id = ?", projectID).
		Order("applications.created_at ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find candidates for project: %w", err)
	}
	return candidates, nil
}
