package repository

import (
	"gorm.io/gorm"

	"github.com/Zachkp/portfolio/internal/models"
)

// Repository bundles the stores for every entity behind one explicitly passed
// database handle.
type Repository struct {
	DB *gorm.DB

	Categories   *Store[models.SkillCategory]
	Skills       *Store[models.Skill]
	Experiences  *Store[models.Experience]
	Educations   *Store[models.Education]
	Certificates *Store[models.Certificate]
	Overviews    *Store[models.Overview]
	Projects     *Store[models.Project]
	Visitors     *VisitorStore
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		DB:           db,
		Categories:   NewStore[models.SkillCategory](db),
		Skills:       NewStore[models.Skill](db),
		Experiences:  NewStore[models.Experience](db),
		Educations:   NewStore[models.Education](db),
		Certificates: NewStore[models.Certificate](db),
		Overviews:    NewStore[models.Overview](db),
		Projects:     NewStore[models.Project](db),
		Visitors:     &VisitorStore{db: db},
	}
}
