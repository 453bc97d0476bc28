// Package api exposes the scheduling engine over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/revisa-app/revisa/internal/cardgen"
	"github.com/revisa-app/revisa/internal/perf"
	"github.com/revisa-app/revisa/internal/review"
	"github.com/revisa-app/revisa/internal/store"
)

// Server wires the HTTP routes to the domain services.
type Server struct {
	echo     *echo.Echo
	review   *review.Service
	perf     *perf.Service
	catalog  store.CatalogRepo
	gen      cardgen.Generator
	validate *validator.Validate
	logger   *slog.Logger

	// sessionLimit caps due-card responses when the client does not
	// pass an explicit limit.
	sessionLimit int
}

// Options configures a Server.
type Options struct {
	Review       *review.Service
	Perf         *perf.Service
	Catalog      store.CatalogRepo
	Generator    cardgen.Generator
	Logger       *slog.Logger
	SessionLimit int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewServer builds the echo instance and registers all routes.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SessionLimit <= 0 {
		opts.SessionLimit = review.DefaultSessionLimit
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Server.ReadTimeout = opts.ReadTimeout
	e.Server.WriteTimeout = opts.WriteTimeout

	s := &Server{
		echo:         e,
		review:       opts.Review,
		perf:         opts.Perf,
		catalog:      opts.Catalog,
		gen:          opts.Generator,
		validate:     validator.New(),
		logger:       opts.Logger,
		sessionLimit: opts.SessionLimit,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	v1 := s.echo.Group("/api/v1")

	v1.GET("/healthz", s.health)

	v1.POST("/study/cards", s.enrollCard)
	v1.DELETE("/study/cards/:cardId", s.removeCard)
	v1.POST("/study/reviews", s.submitReview)
	v1.GET("/study/due", s.dueCards)
	v1.GET("/study/stats", s.studyStats)

	v1.GET("/performance/stats", s.stats)
	v1.GET("/performance/overall", s.overallPerformance)
	v1.GET("/performance/contests/:id", s.contestPerformance)
	v1.GET("/performance/topics/:id", s.topicPerformance)
	v1.GET("/performance/subtopics/:id", s.subtopicPerformance)

	v1.POST("/contests", s.createContest)
	v1.POST("/topics", s.createTopic)
	v1.POST("/subtopics", s.createSubtopic)
	v1.POST("/cards", s.createCard)
	v1.GET("/subtopics/:id/cards", s.listCards)

	v1.POST("/cards/generate", s.generateCards)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start blocks serving HTTP until the listener fails or Shutdown runs.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
