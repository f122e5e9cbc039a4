// Package site serves the portfolio page and its HTMX fragments.
package site

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranama13/portfolio/internal/contact"
	"github.com/pranama13/portfolio/internal/content"
	"github.com/pranama13/portfolio/internal/titles"
	"github.com/pranama13/portfolio/web"
)

// pageSections are the section ids index.html renders, in page order.
var pageSections = []string{"#about", "#projects", "#experience", "#skills", "#connect"}

// Options configures a Server.
type Options struct {
	Content        *content.Content
	ContactAddress string // falls back to the profile email
	TitleInterval  time.Duration
	TitleOptions   []titles.Option
	AssetsDir      string
	IPHashSalt     string
	Logger         *zap.Logger
	Now            func() time.Time
}

// Server is the gin engine plus the page state it renders from.
type Server struct {
	engine    *gin.Engine
	content   *content.Content
	encoder   *contact.Encoder
	interval  time.Duration
	titleOpts []titles.Option
	log       *zap.Logger
	now       func() time.Time
}

// New builds the router.
func New(opts Options) (*Server, error) {
	if opts.Content == nil {
		return nil, errors.New("site: content is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TitleInterval <= 0 {
		opts.TitleInterval = titles.DefaultInterval
	}
	for _, anchor := range pageSections {
		if !opts.Content.Section(anchor) {
			return nil, fmt.Errorf("site: no nav entry for section %s", anchor)
		}
	}
	address := opts.ContactAddress
	if address == "" {
		address = opts.Content.Profile.Email
	}

	hasher, err := newVisitorHasher(opts.IPHashSalt)
	if err != nil {
		return nil, err
	}
	tmpl, err := web.Templates(templateFuncs())
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		engine:    gin.New(),
		content:   opts.Content,
		encoder:   contact.NewEncoder(address),
		interval:  opts.TitleInterval,
		titleOpts: opts.TitleOptions,
		log:       opts.Logger,
		now:       opts.Now,
	}

	r := s.engine
	r.Use(requestID(), accessLog(opts.Logger.Named("http"), hasher), recovery(opts.Logger))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", web.Static())
	if opts.AssetsDir != "" {
		r.Static("/images", filepath.Join(opts.AssetsDir, "images"))
		for _, file := range []string{opts.Content.Profile.Photo, opts.Content.Profile.CV} {
			if strings.HasPrefix(file, "/") {
				r.StaticFile(file, filepath.Join(opts.AssetsDir, filepath.Base(file)))
			}
		}
	}

	r.GET("/", s.index)
	r.GET("/titles/stream", s.streamTitles)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) logger(c *gin.Context) *zap.Logger {
	return s.log.With(zap.String(requestIDKey, c.GetString(requestIDKey)))
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// chars splits a title so each character can be animated on its own.
		"chars": func(s string) []string {
			out := make([]string, 0, len(s))
			for _, r := range s {
				out = append(out, string(r))
			}
			return out
		},
		"delay": func(i int) string {
			return strconv.FormatFloat(float64(i)*0.05, 'f', 2, 64)
		},
	}
}
