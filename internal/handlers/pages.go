package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/repository"
	"github.com/Zachkp/portfolio/internal/utils"
)

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page("Home", nil))
}

func (s *Server) aboutPage(c *gin.Context) {
	categories, err := s.repo.Categories.List(c.Request.Context(), repository.Preload("Skills"))
	if err != nil {
		s.serverError(c, err)
		return
	}

	views := make([]models.SkillCategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, category.Serialize())
	}
	c.HTML(http.StatusOK, "about.html", s.page("About", gin.H{"skillsData": views}))
}

func (s *Server) careerPage(c *gin.Context) {
	ctx := c.Request.Context()
	experiences, err := s.repo.Experiences.List(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}
	educations, err := s.repo.Educations.List(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}
	certificates, err := s.repo.Certificates.List(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}

	// newest first; unparseable dates are the zero time and sink to the end
	sort.SliceStable(certificates, func(i, j int) bool {
		return utils.ParseDate(certificates[i].Date).After(utils.ParseDate(certificates[j].Date))
	})

	experienceViews := make([]models.ExperienceView, 0, len(experiences))
	for _, e := range experiences {
		experienceViews = append(experienceViews, e.Serialize())
	}
	educationViews := make([]models.EducationView, 0, len(educations))
	for _, e := range educations {
		educationViews = append(educationViews, e.Serialize())
	}
	certificateViews := make([]models.CertificateView, 0, len(certificates))
	for _, cert := range certificates {
		certificateViews = append(certificateViews, cert.Serialize())
	}

	c.HTML(http.StatusOK, "career.html", s.page("Career", gin.H{
		"experiences":  experienceViews,
		"educations":   educationViews,
		"certificates": certificateViews,
	}))
}

func (s *Server) getOverview(c *gin.Context) {
	overview, err := s.repo.Overviews.First(c.Request.Context())
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No overview data found"})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview.Serialize())
}

func (s *Server) projectsIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/projects/page/1")
}

// projectRouteCheck reports whether a projects link would resolve, for the
// templates to hide dead navigation.
func (s *Server) projectRouteCheck(c *gin.Context, total int) func(string) bool {
	ctx := c.Request.Context()
	return func(path string) bool {
		return utils.IsValidProjectRoute(path, total, ProjectsPerPage, func(id uint) bool {
			ok, err := s.repo.Projects.Exists(ctx, id)
			return err == nil && ok
		})
	}
}

func (s *Server) projectsPage(c *gin.Context) {
	ctx := c.Request.Context()
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		s.notFound(c)
		return
	}

	count, err := s.repo.Projects.Count(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}
	total := int(count)
	// the first page exists even when there is nothing to show
	if page != 1 && (page < 1 || !utils.IsValidPage(page, total, ProjectsPerPage)) {
		s.notFound(c)
		return
	}

	var truncated string
	overview, err := s.repo.Overviews.First(ctx)
	switch {
	case err == nil:
		if text := overview.Text(); text != "" {
			truncated = utils.TruncateHTML(text, utils.DefaultTruncateLength)
		}
	case !errors.Is(err, repository.ErrNotFound):
		s.serverError(c, err)
		return
	}

	projects, err := s.repo.Projects.List(ctx, repository.Paginate(page, ProjectsPerPage))
	if err != nil {
		s.serverError(c, err)
		return
	}
	views := make([]models.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, p.Serialize())
	}

	pageCount := utils.PageCount(total, ProjectsPerPage)
	if pageCount == 0 {
		pageCount = 1
	}

	c.HTML(http.StatusOK, "projects.html", s.page("Projects", gin.H{
		"truncatedOverview": truncated,
		"projects":          views,
		"page":              page,
		"pageCount":         pageCount,
		"validRoute":        s.projectRouteCheck(c, total),
	}))
}

func (s *Server) projectDetail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		s.notFound(c)
		return
	}

	ctx := c.Request.Context()
	project, err := s.repo.Projects.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(c)
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	count, err := s.repo.Projects.Count(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}

	view := project.Serialize()
	c.HTML(http.StatusOK, "project_detail.html", s.page(view.Name, gin.H{
		"project":    view,
		"backLink":   "/projects",
		"validRoute": s.projectRouteCheck(c, int(count)),
	}))
}
