package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/repository"
)

// patcher applies the fields present in a request body to an entity.
type patcher[T any] interface {
	Apply(*T)
	// Missing reports required members absent from a create request.
	Missing() error
}

// resource serves the list/create/get/update/delete endpoints of one entity.
type resource[T any, P patcher[T], V any] struct {
	name       string // lower case, used in error messages
	label      string // capitalised, used in confirmations
	store      *repository.Store[T]
	serialize  func(T) V
	failStatus int
	// scopes apply to every read, e.g. preloading associations.
	scopes []repository.Scope

	// check runs before create and update; its error is reported like a
	// persistence failure.
	check func(ctx context.Context, item *T) error
}

func (r resource[T, P, V]) serializeAll(items []T) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, r.serialize(item))
	}
	return out
}

func (r resource[T, P, V]) fail(c *gin.Context, action string, err error) {
	c.AbortWithStatusJSON(r.failStatus, gin.H{
		"error": fmt.Sprintf("Failed to %s %s: %v", action, r.name, err),
	})
}

// load fetches the entity named by the :id parameter, answering 404 itself
// when there is none.
func (r resource[T, P, V]) load(c *gin.Context) (*T, bool) {
	id, ok := idParam(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return nil, false
	}
	item, err := r.store.Get(c.Request.Context(), id, r.scopes...)
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("%s %d not found.", r.label, id),
		})
		return nil, false
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Failed to load %s: %v", r.name, err),
		})
		return nil, false
	}
	return item, true
}

func (r resource[T, P, V]) list(c *gin.Context) {
	items, err := r.store.List(c.Request.Context(), r.scopes...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Failed to list %s: %v", r.name, err),
		})
		return
	}
	c.JSON(http.StatusOK, r.serializeAll(items))
}

func (r resource[T, P, V]) create(c *gin.Context) {
	var patch P
	if !bindBody(c, &patch) {
		return
	}

	if err := patch.Missing(); err != nil {
		r.fail(c, "create", err)
		return
	}

	var item T
	patch.Apply(&item)
	if r.check != nil {
		if err := r.check(c.Request.Context(), &item); err != nil {
			r.fail(c, "create", err)
			return
		}
	}
	if err := r.store.Create(c.Request.Context(), &item); err != nil {
		r.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, r.serialize(item))
}

func (r resource[T, P, V]) get(c *gin.Context) {
	item, ok := r.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r.serialize(*item))
}

// update applies a partial update; omitted fields keep their stored value.
func (r resource[T, P, V]) update(c *gin.Context) {
	item, ok := r.load(c)
	if !ok {
		return
	}

	var patch P
	if !bindBody(c, &patch) {
		return
	}

	patch.Apply(item)
	if r.check != nil {
		if err := r.check(c.Request.Context(), item); err != nil {
			r.fail(c, "update", err)
			return
		}
	}
	if err := r.store.Update(c.Request.Context(), item); err != nil {
		r.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, r.serialize(*item))
}

func (r resource[T, P, V]) remove(c *gin.Context) {
	item, ok := r.load(c)
	if !ok {
		return
	}
	if err := r.store.Delete(c.Request.Context(), item); err != nil {
		r.fail(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.label + " entry deleted."})
}

func (s *Server) experienceResource() resource[models.Experience, models.ExperiencePatch, models.ExperienceView] {
	return resource[models.Experience, models.ExperiencePatch, models.ExperienceView]{
		name:       "experience",
		label:      "Experience",
		store:      s.repo.Experiences,
		serialize:  models.Experience.Serialize,
		failStatus: http.StatusInternalServerError,
	}
}

func (s *Server) educationResource() resource[models.Education, models.EducationPatch, models.EducationView] {
	return resource[models.Education, models.EducationPatch, models.EducationView]{
		name:       "education",
		label:      "Education",
		store:      s.repo.Educations,
		serialize:  models.Education.Serialize,
		failStatus: http.StatusInternalServerError,
	}
}

func (s *Server) certificateResource() resource[models.Certificate, models.CertificatePatch, models.CertificateView] {
	return resource[models.Certificate, models.CertificatePatch, models.CertificateView]{
		name:       "certificate",
		label:      "Certificate",
		store:      s.repo.Certificates,
		serialize:  models.Certificate.Serialize,
		failStatus: http.StatusInternalServerError,
	}
}

func (s *Server) projectResource() resource[models.Project, models.ProjectPatch, models.ProjectView] {
	return resource[models.Project, models.ProjectPatch, models.ProjectView]{
		name:       "project",
		label:      "Project",
		store:      s.repo.Projects,
		serialize:  models.Project.Serialize,
		failStatus: http.StatusBadRequest,
	}
}

func (s *Server) categoryResource() resource[models.SkillCategory, models.SkillCategoryPatch, models.SkillCategoryView] {
	return resource[models.SkillCategory, models.SkillCategoryPatch, models.SkillCategoryView]{
		name:       "skill category",
		label:      "Skill category",
		store:      s.repo.Categories,
		serialize:  models.SkillCategory.Serialize,
		failStatus: http.StatusInternalServerError,
		scopes:     []repository.Scope{repository.Preload("Skills")},
	}
}

func (s *Server) skillResource() resource[models.Skill, models.SkillPatch, models.SkillView] {
	return resource[models.Skill, models.SkillPatch, models.SkillView]{
		name:       "skill",
		label:      "Skill",
		store:      s.repo.Skills,
		serialize:  models.Skill.Serialize,
		failStatus: http.StatusInternalServerError,
		check: func(ctx context.Context, skill *models.Skill) error {
			if skill.CategoryID == 0 {
				return nil // reported as a missing field
			}
			ok, err := s.repo.Categories.Exists(ctx, skill.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("skill category %d does not exist", skill.CategoryID)
			}
			return nil
		},
	}
}
