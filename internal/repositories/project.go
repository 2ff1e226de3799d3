package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentlink/shortlist-engine/internal/models"
)

// ErrProjectNotFound is returned when no project exists for the given id.
// The shortlist service propagates it unchanged; callers map it to a
// user-facing message.
var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	FindByID(id uuid.UUID) (*models.ProjectRequirements, error)
	Create(project *models.ProjectRequirements) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindByID(id uuid.UUID) (*models.ProjectRequirements, error) {
	var project models.ProjectRequirements
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) Create(project *models.ProjectRequirements) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}
