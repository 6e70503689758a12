// Package server exposes brief generation over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/postgres"
)

// Runner executes one generation run. Satisfied by *brief.Pipeline.
type Runner interface {
	Run(ctx context.Context, request brief.Request) (*brief.Result, error)
}

// RunStore persists and retrieves run records. Optional; without one
// the server still generates briefs but has no run history.
type RunStore interface {
	SaveRun(ctx context.Context, record *postgres.RunRecord) error
	GetRun(ctx context.Context, runID string) (*postgres.RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]*postgres.RunRecord, error)
}

// Options configures a Server.
type Options struct {
	Runner Runner
	Store  RunStore
	Logger *slog.Logger
}

// Server wires the pipeline and run store into an echo application.
type Server struct {
	runner Runner
	store  RunStore
	logger *slog.Logger
	echo   *echo.Echo
}

func New(opts Options) (*Server, error) {
	if opts.Runner == nil {
		return nil, errors.New("runner is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		runner: opts.Runner,
		store:  opts.Store,
		logger: opts.Logger,
		echo:   e,
	}

	e.GET("/healthz", s.health)
	e.POST("/api/v1/briefs", s.createBrief)
	e.GET("/api/v1/runs", s.listRuns)
	e.GET("/api/v1/runs/:id", s.getRun)
	return s, nil
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying http.Handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// BriefRequest is the POST /api/v1/briefs payload.
type BriefRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language,omitempty"`
}

// BriefResponse is returned for both completed and degraded runs.
type BriefResponse struct {
	RunID    string              `json:"run_id"`
	Status   brief.RunStatus     `json:"status"`
	Brief    *brief.ContentBrief `json:"brief,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
	Errors   []string            `json:"errors,omitempty"`
	Duration float64             `json:"duration_seconds"`
}

func (s *Server) createBrief(c echo.Context) error {
	var request BriefRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	ctx := c.Request().Context()
	result, err := s.runner.Run(ctx, brief.Request{
		Prompt:   request.Prompt,
		Language: request.Language,
	})
	if err != nil {
		if brief.MatchesErrorType(err, brief.ErrorTypeValidation) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		s.saveResult(ctx, request, result)
		s.logger.Error("run failed", "error", err)
		response := &BriefResponse{Status: brief.RunStatusFailed}
		if result != nil {
			response.RunID = result.RunID
			response.Errors = result.Errors
			response.Duration = result.Duration.Seconds()
		}
		return c.JSON(http.StatusInternalServerError, response)
	}

	s.saveResult(ctx, request, result)
	return c.JSON(http.StatusOK, &BriefResponse{
		RunID:    result.RunID,
		Status:   result.Status,
		Brief:    result.Brief,
		Warnings: result.Warnings,
		Duration: result.Duration.Seconds(),
	})
}

// saveResult persists the run when a store is configured. Persistence
// failures are logged, never surfaced to the caller.
func (s *Server) saveResult(ctx context.Context, request BriefRequest, result *brief.Result) {
	if s.store == nil || result == nil {
		return
	}
	language := request.Language
	if result.State != nil {
		language = result.State.Language
	}
	record := &postgres.RunRecord{
		RunID:     result.RunID,
		Status:    result.Status,
		Prompt:    request.Prompt,
		Language:  language,
		Brief:     result.Brief,
		Warnings:  result.Warnings,
		Errors:    result.Errors,
		Duration:  result.Duration,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveRun(ctx, record); err != nil {
		s.logger.Error("failed to save run", "run_id", result.RunID, "error", err)
	}
}

func (s *Server) getRun(c echo.Context) error {
	if s.store == nil {
		return echo.NewHTTPError(http.StatusNotImplemented, "run history is not configured")
	}
	record, err := s.store.GetRun(c.Request().Context(), c.Param("id"))
	if errors.Is(err, postgres.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "run not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record)
}

func (s *Server) listRuns(c echo.Context) error {
	if s.store == nil {
		return echo.NewHTTPError(http.StatusNotImplemented, "run history is not configured")
	}
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}
	records, err := s.store.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if records == nil {
		records = []*postgres.RunRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
