package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/revisa-app/revisa/internal/perf"
	"github.com/revisa-app/revisa/internal/store"
)

// stats reports the review summary for a user, optionally narrowed to
// a contest or subtopic and bounded in time via from/to query params.
func (s *Server) stats(c echo.Context) error {
	userID, ok := s.userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	scope := store.Scope{
		ContestID:  c.QueryParam("contestId"),
		SubtopicID: c.QueryParam("subtopicId"),
	}

	var win perf.Window
	var err error
	if win.From, err = parseTimeParam(c.QueryParam("from"), false); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "from must be RFC3339 or YYYY-MM-DD"})
	}
	if win.To, err = parseTimeParam(c.QueryParam("to"), true); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "to must be RFC3339 or YYYY-MM-DD"})
	}

	summary, err := s.perf.Stats(c.Request().Context(), userID, scope, win)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// parseTimeParam reads an RFC3339 timestamp or a bare date. A bare
// date used as an upper bound covers the whole day.
func parseTimeParam(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		ts = ts.Add(24*time.Hour - time.Second)
	}
	return ts, nil
}

func (s *Server) userID(c echo.Context) (string, bool) {
	userID := c.QueryParam("userId")
	return userID, userID != ""
}

func (s *Server) overallPerformance(c echo.Context) error {
	userID, ok := s.userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	summary, err := s.perf.Overall(c.Request().Context(), userID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) contestPerformance(c echo.Context) error {
	userID, ok := s.userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	summary, err := s.perf.Contest(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) topicPerformance(c echo.Context) error {
	userID, ok := s.userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	summary, err := s.perf.Topic(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) subtopicPerformance(c echo.Context) error {
	userID, ok := s.userID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	summary, err := s.perf.Subtopic(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
