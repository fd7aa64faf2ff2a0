// Package site serves the portfolio pages, the JSON API and the admin dashboard.
package site

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogu-code/portfolio/internal/analytics"
	"github.com/yogu-code/portfolio/internal/contact"
	"github.com/yogu-code/portfolio/internal/portfolio"
)

// Options wires the server's collaborators. Store, Tracker and Mailer may be
// nil; the matching features are then switched off.
type Options struct {
	Catalog   *portfolio.Catalog
	Store     *analytics.Store
	Tracker   *analytics.Tracker
	Hasher    *analytics.Hasher
	Mailer    contact.Mailer
	Admin     AdminCredentials
	Retention time.Duration
	Log       *logrus.Entry
	Now       func() time.Time
}

// Server is the portfolio HTTP application.
type Server struct {
	engine    *gin.Engine
	catalog   *portfolio.Catalog
	store     *analytics.Store
	tracker   *analytics.Tracker
	hasher    *analytics.Hasher
	mailer    contact.Mailer
	admin     *adminAuth
	retention time.Duration
	log       *logrus.Entry
	now       func() time.Time
}

// New builds the router. Call gin.SetMode before New to pick the gin mode.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if opts.Log == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		catalog:   opts.Catalog,
		store:     opts.Store,
		tracker:   opts.Tracker,
		hasher:    opts.Hasher,
		mailer:    opts.Mailer,
		retention: opts.Retention,
		log:       opts.Log,
		now:       opts.Now,
	}
	if opts.Store != nil && opts.Admin.Password != "" {
		s.admin, err = newAdminAuth(opts.Admin)
		if err != nil {
			return nil, err
		}
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(requestID(), accessLog(s.log), recovery(s.log))
	if s.tracker != nil {
		r.Use(trackVisits(s.tracker))
	}

	r.StaticFS("/static", http.FS(staticFiles()))
	r.Static("/images", "./images")

	r.GET("/", s.index)
	r.GET("/projects", s.projectsFragment)
	r.GET("/privacy", s.privacy)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/projects", s.listProjects)

	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "Page not found")
	})

	s.engine = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// renderError writes an error page, or JSON for API callers.
func (s *Server) renderError(c *gin.Context, status int, message string) {
	if isAPI(c) {
		c.JSON(status, gin.H{"error": message})
		return
	}
	c.HTML(status, "error.html", gin.H{
		"Status": http.StatusText(status),
		"Error":  message,
	})
}

func isAPI(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/") || c.GetHeader("Accept") == "application/json"
}
