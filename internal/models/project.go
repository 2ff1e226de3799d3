package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProjectRequirements is the immutable snapshot of a project that candidates
// are evaluated against. The engine never mutates it.
type ProjectRequirements struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string         `gorm:"type:text;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"type:text" json:"category"`
	Subcategory     string         `gorm:"type:text" json:"subcategory,omitempty"`
	SkillsRequired  pq.StringArray `gorm:"type:text[]" json:"skills_required"`
	ExperienceLevel string         `gorm:"type:text" json:"experience_level"`
	TeamSize        int            `gorm:"type:int" json:"team_size"`
	DurationMonths  int            `gorm:"type:int" json:"duration_months"`
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Deliverables    pq.StringArray `gorm:"type:text[]" json:"deliverables"`
	CreatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ProjectRequirements) TableName() string {
	return "projects"
}
