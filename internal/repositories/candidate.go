package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentlink/shortlist-engine/internal/models"
)

// ErrCandidateNotFound is returned when no candidate exists for the given id.
var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(candidate *models.CandidateProfile) error
	FindByID(id uuid.UUID) (*models.CandidateProfile, error)
	// SearchByTerms pre-filters the candidate pool for the keyword matcher:
	// anyone matching any term in university, major, location or bio
	// (substring, case-insensitive), or in skills, interests or goals.
	SearchByTerms(terms []string, limit int) ([]models.CandidateProfile, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.CandidateProfile) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.CandidateProfile, error) {
	var candidate models.CandidateProfile
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) SearchByTerms(terms []string, limit int) ([]models.CandidateProfile, error) {
	if len(terms) == 0 {
		return []models.CandidateProfile{}, nil
	}

	var conds []string
	var args []interface{}
	for _, term := range terms {
		pattern := "%" + term + "%"
		conds = append(conds, "(university ILIKE ? OR major ILIKE ? OR location ILIKE ? OR bio ILIKE ? OR ? ILIKE ANY(skills) OR ? ILIKE ANY(interests) OR ? ILIKE ANY(goals))")
		args = append(args, pattern, pattern, pattern, pattern, term, term, term)
	}

	var candidates []models.CandidateProfile
	err := r.db.
		Where(strings.Join(conds, " OR "), args...).
		Limit(limit).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}
	return candidates, nil
}
