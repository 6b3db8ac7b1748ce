package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/csrf"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/repository"
	"github.com/Zachkp/portfolio/web"
)

// ProjectsPerPage is the size of one projects listing page.
const ProjectsPerPage = 12

// BotVerifier decides whether a form was submitted by a human.
type BotVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// Notifier delivers email.
type Notifier interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type Options struct {
	Config   *config.Config
	Repo     *repository.Repository
	Verifier BotVerifier
	Mailer   Notifier
	Logger   *slog.Logger
}

// Server owns the gin engine and everything the handlers need. It is an
// http.Handler.
type Server struct {
	cfg      *config.Config
	repo     *repository.Repository
	verifier BotVerifier
	mailer   Notifier
	csrf     *csrf.Guard
	ipSalt   string
	log      *slog.Logger

	engine  *gin.Engine
	handler http.Handler
}

func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Repo == nil {
		return nil, fmt.Errorf("handlers: config and repository are required")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	secret := opts.Config.SecretKey
	if secret == "" {
		generated, err := csrf.RandomToken()
		if err != nil {
			return nil, err
		}
		secret = generated
		log.Warn("SECRET_KEY not set, using a random key; sessions will not survive a restart")
	}

	// only production is served over HTTPS; elsewhere a Secure cookie is dropped
	secureCookie := opts.Config.Env == config.EnvProduction
	s := &Server{
		cfg:      opts.Config,
		repo:     opts.Repo,
		verifier: opts.Verifier,
		mailer:   opts.Mailer,
		csrf:     csrf.New([]byte(secret), opts.Config.CSRFEnabled, secureCookie),
		ipSalt:   secret,
		log:      log,
	}

	if !s.csrf.Enabled() {
		log.Warn("CSRF protection disabled")
	}

	engine, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	s.handler = cors.New(cors.Options{
		AllowedOrigins: opts.Config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(engine)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Engine exposes the router, e.g. to list routes.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) routes() (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), requestLogger(s.log), s.visitorTracking())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", s.home)

	// About
	r.GET("/about", s.aboutPage)
	categories := s.categoryResource()
	skills := s.skillResource()
	about := r.Group("/about/api")
	about.GET("/categories", categories.list)
	about.POST("/categories", categories.create)
	about.PUT("/categories/:id", categories.update)
	about.DELETE("/categories/:id", categories.remove)
	about.GET("/skills", skills.list)
	about.POST("/skills", skills.create)
	about.PUT("/skills/:id", skills.update)
	about.DELETE("/skills/:id", skills.remove)

	// Career
	r.GET("/career", s.careerPage)
	experience := s.experienceResource()
	education := s.educationResource()
	certificates := s.certificateResource()
	career := r.Group("/career/api")
	career.GET("/experience", experience.list)
	career.POST("/experience", experience.create)
	career.PUT("/experience/:id", experience.update)
	career.DELETE("/experience/:id", experience.remove)
	career.GET("/education", education.list)
	career.POST("/education", education.create)
	career.PUT("/education/:id", education.update)
	career.DELETE("/education/:id", education.remove)
	career.GET("/certificates", certificates.list)
	career.POST("/certificates", certificates.create)
	career.PUT("/certificates/:id", certificates.update)
	career.DELETE("/certificates/:id", certificates.remove)

	// Projects
	projects := s.projectResource()
	r.GET("/projects/api/overview", s.getOverview)
	r.GET("/projects/api", projects.list)
	r.POST("/projects/api", projects.create)
	r.GET("/projects/api/:id", projects.get)
	r.PUT("/projects/api/:id", projects.update)
	r.DELETE("/projects/api/:id", projects.remove)
	r.GET("/projects", s.projectsIndex)
	r.GET("/projects/", s.projectsIndex)
	r.GET("/projects/page/:page", s.projectsPage)
	r.GET("/projects/:id", s.projectDetail)

	// Forms
	r.GET("/contact", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.GET("/cv-generator", s.cvRequestForm)
	r.POST("/cv-generator", s.submitCVRequest)

	if s.cfg.AdminToken != "" {
		admin := r.Group("/admin/api", s.adminAuth())
		admin.GET("/stats", s.adminStats)
	}

	r.NoRoute(s.notFound)
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed."})
	})

	return r, nil
}
