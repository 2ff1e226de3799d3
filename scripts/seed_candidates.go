package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"talentlink/shortlist-engine/internal/config"
	"talentlink/shortlist-engine/internal/models"
	"talentlink/shortlist-engine/internal/repositories"
)

func main() {
	log.Println("🚀 Seeding demo projects and candidates...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	projectRepo := repositories.NewProjectRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	project := &models.ProjectRequirements{
		ID:              uuid.New(),
		Title:           "Analytics Dashboard",
		Description:     "Build a data analytics dashboard with a Python backend.",
		Category:        "Software Development",
		Subcategory:     "Data Engineering",
		SkillsRequired:  pq.StringArray{"Python", "SQL", "React"},
		ExperienceLevel: "Intermediate",
		TeamSize:        3,
		DurationMonths:  4,
		Requirements:    pq.StringArray{"Weekly sync availability", "Portfolio of past work"},
		Deliverables:    pq.StringArray{"Dashboard MVP", "Deployment guide"},
	}
	if err := projectRepo.Create(project); err != nil {
		log.Fatalf("❌ Failed to seed project: %v", err)
	}
	log.Printf("✅ Seeded project %s\n", project.ID)

	candidates := []*models.CandidateProfile{
		{
			ID:                 uuid.New(),
			Name:               "Amira Hassan",
			University:         "American University of Sharjah",
			Major:              "Computer Science",
			Location:           "Dubai",
			Skills:             pq.StringArray{"Python", "SQL", "Pandas"},
			Interests:          pq.StringArray{"Data Science", "Visualization"},
			Goals:              pq.StringArray{"Land a data engineering internship"},
			Bio:                "Python developer with a focus on analytics pipelines.",
			GraduationYear:     2026,
			PreviousExperience: pq.StringArray{"Data intern at a logistics startup"},
			ApplicationCount:   2,
		},
		{
			ID:                 uuid.New(),
			Name:               "Jonas Weber",
			University:         "TU Munich",
			Major:              "Information Systems",
			Location:           "Munich",
			Skills:             pq.StringArray{"React", "TypeScript", "SQL"},
			Interests:          pq.StringArray{"Frontend", "Product Design"},
			Goals:              pq.StringArray{"Build production frontends"},
			Bio:                "Frontend-leaning full stack student.",
			GraduationYear:     2025,
			PreviousExperience: pq.StringArray{"Teaching assistant, web engineering"},
			ApplicationCount:   4,
		},
		{
			ID:               uuid.New(),
			Name:             "Priya Nair",
			Skills:           pq.StringArray{"Python"},
			Motivation:       "Looking for my first real project experience.",
			ApplicationCount: 0,
		},
	}

	for _, candidate := range candidates {
		if err := candidateRepo.Create(candidate); err != nil {
			log.Fatalf("❌ Failed to seed candidate %s: %v", candidate.Name, err)
		}
		if err := applicationRepo.Create(&models.Application{
			ID:          uuid.New(),
			ProjectID:   project.ID,
			CandidateID: candidate.ID,
		}); err != nil {
			log.Fatalf("❌ Failed to seed application for %s: %v", candidate.Name, err)
		}
		log.Printf("✅ Seeded candidate %s (%s)\n", candidate.Name, candidate.ID)
	}

	log.Println("✅ Seeding completed")
}
