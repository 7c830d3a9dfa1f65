package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sunil5411/portfolio/internal/config"
	"github.com/Sunil5411/portfolio/internal/contact"
	"github.com/Sunil5411/portfolio/internal/metrics"
	"github.com/Sunil5411/portfolio/internal/skills"
)

type server struct {
	cfg      config.Server
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	contact  *contact.Service
	catalog  []skills.Item

	// seed returns the particle seed for a stream that did not ask for one.
	seed func() int64
}

func newServer(cfg config.Server, logger *slog.Logger, m *metrics.Metrics, g prometheus.Gatherer, svc *contact.Service) *server {
	s := &server{
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		gatherer: g,
		contact:  svc,
		catalog:  skills.Catalog(),
	}
	if cfg.ParticleSeed != 0 {
		s.seed = func() int64 { return cfg.ParticleSeed }
	} else {
		s.seed = rand.Int63
	}
	return s
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(s.cfg.TemplatesGlob)

	r.Use(visitorTrackingMiddleware(s.metrics, s.logger))

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", s.index)

	// HTMX fragments
	r.GET("/skills", s.skillsFragment)
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"form": contact.Form{},
		})
	})
	r.POST("/contact", s.submitContact)

	// Animated canvases
	r.GET("/stream/:component", s.stream)
	r.GET("/frame/:file", s.frame)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	return r
}

func (s *server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"name":            Name,
		"headline":        Headline,
		"tagline":         Tagline,
		"role":            Role,
		"about":           AboutMe,
		"built":           Built,
		"result":          Result,
		"topSkills":       TopSkills,
		"skillCategories": SkillCategories,
		"buttons":         HeroButtons,
		"education":       Educations,
		"projects":        Projects,
		"certifications":  Certifications,
		"planned":         PlannedCertifications,
		"contactCards":    ContactCards,
		"location":        Location,
		"availability":    Availability,
		"skills":          skills.NewView(s.catalog, "", skills.All, true),
		"form":            contact.Form{},
		"theme":           s.cfg.MutedForeground,
		"year":            time.Now().Year(),
	})
}

// parseCategory maps a query value onto a known category; anything else is All.
func parseCategory(v string) skills.Category {
	for _, info := range skills.Categories() {
		if string(info.ID) == v {
			return info.ID
		}
	}
	return skills.All
}

func (s *server) skillsFragment(c *gin.Context) {
	playing := true
	if v := c.Query("playing"); v != "" {
		if p, err := strconv.ParseBool(v); err == nil {
			playing = p
		}
	}
	view := skills.NewView(s.catalog, c.Query("q"), parseCategory(c.Query("category")), playing)
	c.HTML(http.StatusOK, "skills.html", view)
}

// Handle contact form submission with HTMX
func (s *server) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		s.logger.Debug("contact form rejected", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in every field before sending.",
			"form":  form,
		})
		return
	}

	n, err := s.contact.Submit(c.Request.Context(), &form)
	if err != nil {
		msg := "Sorry, your message could not be sent. Please try again."
		if errors.Is(err, contact.ErrIncompleteForm) {
			msg = "Please fill in every field before sending."
		}
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": msg,
			"form":  form,
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"notification": n,
		"form":         form,
	})
}
