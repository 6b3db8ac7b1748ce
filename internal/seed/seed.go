// Package seed loads portfolio content from a YAML file into the database.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/repository"
)

type Skill struct {
	Name     string  `yaml:"name"`
	Level    *string `yaml:"level"`
	Progress *int    `yaml:"progress"`
}

type Category struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

type Experience struct {
	Image    *string  `yaml:"image"`
	Title    string   `yaml:"title"`
	Company  string   `yaml:"company"`
	Duration string   `yaml:"duration"`
	Points   []string `yaml:"points"`
	Skills   []string `yaml:"skills"`
}

type Education struct {
	Image                 string   `yaml:"image"`
	Degree                string   `yaml:"degree"`
	Institution           string   `yaml:"institution"`
	Year                  string   `yaml:"year"`
	AdditionalInformation []string `yaml:"additional_information"`
}

type Certificate struct {
	Title       string `yaml:"title"`
	Institution string `yaml:"institution"`
	Link        string `yaml:"link"`
	Date        string `yaml:"date"`
}

type Project struct {
	Name             string         `yaml:"name"`
	Description      string         `yaml:"description"`
	GithubLink       string         `yaml:"github_link"`
	ProjectImage     *string        `yaml:"project_image"`
	DemoLink         *string        `yaml:"demo_link"`
	TechnicalDetails map[string]any `yaml:"technical_details"`
	KeyLearnings     string         `yaml:"key_learnings"`
	Status           string         `yaml:"status"`
	Demonstration    *string        `yaml:"demonstration"`
}

// File is the layout of a seed document. Every section is optional.
type File struct {
	Categories   []Category     `yaml:"categories"`
	Experiences  []Experience   `yaml:"experiences"`
	Educations   []Education    `yaml:"educations"`
	Certificates []Certificate  `yaml:"certificates"`
	Overview     map[string]any `yaml:"overview"`
	Projects     []Project      `yaml:"projects"`
}

// Summary counts the rows written per table.
type Summary struct {
	Categories   int
	Skills       int
	Experiences  int
	Educations   int
	Certificates int
	Overviews    int
	Projects     int
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Apply writes f in one transaction. A section whose table already holds
// rows is skipped, so seeding twice is harmless.
func Apply(ctx context.Context, db *gorm.DB, f *File) (Summary, error) {
	var sum Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.New(tx)
		var err error
		if sum.Categories, sum.Skills, err = applyCategories(ctx, repo, f.Categories); err != nil {
			return err
		}
		if sum.Experiences, err = applyAll(ctx, repo.Experiences, f.Experiences, Experience.model); err != nil {
			return err
		}
		if sum.Educations, err = applyAll(ctx, repo.Educations, f.Educations, Education.model); err != nil {
			return err
		}
		if sum.Certificates, err = applyAll(ctx, repo.Certificates, f.Certificates, Certificate.model); err != nil {
			return err
		}
		if len(f.Overview) > 0 {
			overview := []map[string]any{f.Overview}
			if sum.Overviews, err = applyAll(ctx, repo.Overviews, overview, overviewModel); err != nil {
				return err
			}
		}
		if sum.Projects, err = applyAll(ctx, repo.Projects, f.Projects, Project.model); err != nil {
			return err
		}
		return nil
	})
	return sum, err
}

func applyAll[S any, T any](ctx context.Context, store *repository.Store[T], items []S, convert func(S) T) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	n, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("seed section skipped, table not empty", "table", fmt.Sprintf("%T", *new(T)), "rows", n)
		return 0, nil
	}
	for i, item := range items {
		row := convert(item)
		if err := store.Create(ctx, &row); err != nil {
			return 0, fmt.Errorf("seed %T #%d: %w", row, i+1, err)
		}
	}
	return len(items), nil
}

func applyCategories(ctx context.Context, repo *repository.Repository, categories []Category) (int, int, error) {
	if len(categories) == 0 {
		return 0, 0, nil
	}
	n, err := repo.Categories.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	if n > 0 {
		slog.Info("seed section skipped, table not empty", "table", "technical_skill_category", "rows", n)
		return 0, 0, nil
	}

	skills := 0
	for _, c := range categories {
		category := &models.SkillCategory{Name: c.Name}
		if err := repo.Categories.Create(ctx, category); err != nil {
			return 0, 0, fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		for _, s := range c.Skills {
			skill := &models.Skill{Name: s.Name, Level: s.Level, Progress: s.Progress, CategoryID: category.ID}
			if err := repo.Skills.Create(ctx, skill); err != nil {
				return 0, 0, fmt.Errorf("seed skill %q: %w", s.Name, err)
			}
			skills++
		}
	}
	return len(categories), skills, nil
}

func (e Experience) model() models.Experience {
	return models.Experience{
		Image:    e.Image,
		Title:    e.Title,
		Company:  e.Company,
		Duration: e.Duration,
		Points:   models.StringList(e.Points).Join(models.LineSeparator),
		Skills:   models.StringList(e.Skills).Join(models.SkillSeparator),
	}
}

func (e Education) model() models.Education {
	out := models.Education{
		Image:       e.Image,
		Degree:      e.Degree,
		Institution: e.Institution,
		Year:        e.Year,
	}
	if len(e.AdditionalInformation) > 0 {
		info := models.StringList(e.AdditionalInformation).Join(models.LineSeparator)
		out.AdditionalInformation = &info
	}
	return out
}

func (c Certificate) model() models.Certificate {
	return models.Certificate{Title: c.Title, Institution: c.Institution, Link: c.Link, Date: c.Date}
}

func overviewModel(data map[string]any) models.Overview {
	return models.Overview{OverviewData: models.NewDocument(data)}
}

func (p Project) model() models.Project {
	details := models.EmptyDocument()
	if p.TechnicalDetails != nil {
		details = models.NewDocument(p.TechnicalDetails)
	}
	return models.Project{
		Name:             p.Name,
		Description:      p.Description,
		GithubLink:       p.GithubLink,
		ProjectImage:     p.ProjectImage,
		DemoLink:         p.DemoLink,
		TechnicalDetails: details,
		KeyLearnings:     p.KeyLearnings,
		Status:           p.Status,
		Demonstration:    p.Demonstration,
	}
}
