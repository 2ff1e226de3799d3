package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CandidateProfile is one applicant's profile as submitted with an
// application. Identity is the candidate's user ID, not the application ID.
type CandidateProfile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name               string         `gorm:"type:text;not null" json:"name"`
	University         string         `gorm:"type:text" json:"university,omitempty"`
	Major              string         `gorm:"type:text" json:"major,omitempty"`
	Location           string         `gorm:"type:text" json:"location,omitempty"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`
	Interests          pq.StringArray `gorm:"type:text[]" json:"interests"`
	Goals              pq.StringArray `gorm:"type:text[]" json:"goals"`
	Bio                string         `gorm:"type:text" json:"bio,omitempty"`
	GraduationYear     int            `gorm:"type:int" json:"graduation_year,omitempty"`
	Linkedin           string         `gorm:"type:text" json:"linkedin,omitempty"`
	CoverLetter        string         `gorm:"type:text" json:"cover_letter,omitempty"`
	Motivation         string         `gorm:"type:text" json:"motivation,omitempty"`
	PreviousExperience pq.StringArray `gorm:"type:text[]" json:"previous_experience"`
	ApplicationCount   int            `gorm:"type:int" json:"application_count"`
	CreatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CandidateProfile) TableName() string {
	return "candidates"
}

// Application links a candidate to a project. The engine only reads these to
// resolve the candidate pool for a project.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null" json:"candidate_id"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Candidate CandidateProfile `gorm:"foreignKey:CandidateID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
