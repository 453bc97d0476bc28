package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/revisa-app/revisa/internal/review"
	"github.com/revisa-app/revisa/internal/store"
)

type enrollRequest struct {
	UserID string `json:"userId" validate:"required"`
	CardID string `json:"cardId" validate:"required"`
}

type submitReviewRequest struct {
	UserID      string  `json:"userId" validate:"required"`
	CardID      string  `json:"cardId" validate:"required"`
	Quality     *int    `json:"quality" validate:"required"`
	LatencySecs float64 `json:"responseTime" validate:"gte=0"`
}

// recordResponse is the JSON shape of a scheduling record.
type recordResponse struct {
	UserID          string     `json:"userId"`
	CardID          string     `json:"cardId"`
	ContestID       string     `json:"contestId"`
	SubtopicID      string     `json:"subtopicId"`
	Repetitions     int        `json:"repetitions"`
	EaseFactor      float64    `json:"easeFactor"`
	IntervalDays    int        `json:"intervalDays"`
	NextDueAt       *time.Time `json:"nextReviewDate"`
	Status          string     `json:"status"`
	CorrectStreak   int        `json:"correctStreak"`
	IncorrectStreak int        `json:"incorrectStreak"`
	TotalCorrect    int        `json:"totalCorrect"`
	TotalIncorrect  int        `json:"totalIncorrect"`
	LastReviewedAt  *time.Time `json:"lastReviewedAt"`
}

func toRecordResponse(r *store.Record) recordResponse {
	return recordResponse{
		UserID:          r.UserID,
		CardID:          r.CardID,
		ContestID:       r.ContestID,
		SubtopicID:      r.SubtopicID,
		Repetitions:     r.Repetitions,
		EaseFactor:      r.EaseFactor,
		IntervalDays:    r.IntervalDays,
		NextDueAt:       r.NextDueAt,
		Status:          r.Status,
		CorrectStreak:   r.CorrectStreak,
		IncorrectStreak: r.IncorrectStreak,
		TotalCorrect:    r.TotalCorrect,
		TotalIncorrect:  r.TotalIncorrect,
		LastReviewedAt:  r.LastReviewedAt,
	}
}

func (s *Server) enrollCard(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	rec, err := s.review.Enroll(c.Request().Context(), req.UserID, req.CardID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toRecordResponse(rec))
}

func (s *Server) removeCard(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	if err := s.review.Remove(c.Request().Context(), userID, c.Param("cardId")); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) submitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	out, err := s.review.Submit(c.Request().Context(), review.Submission{
		UserID:      req.UserID,
		CardID:      req.CardID,
		Quality:     *req.Quality,
		LatencySecs: req.LatencySecs,
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"record":         toRecordResponse(out.Record),
		"nextReviewDate": out.NextDueAt,
		"status":         string(out.Status),
	})
}

func (s *Server) dueCards(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	scope := store.Scope{
		ContestID:  c.QueryParam("contestId"),
		SubtopicID: c.QueryParam("subtopicId"),
	}

	limit := s.sessionLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = n
	}

	records, err := s.review.DueCards(c.Request().Context(), userID, scope, limit)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]recordResponse, len(records))
	for i, r := range records {
		out[i] = toRecordResponse(r)
	}
	return c.JSON(http.StatusOK, map[string]any{"cards": out, "count": len(out)})
}

// studyStats reports the card pipeline for a user: per-status counts
// plus how many cards are due, optionally narrowed to a contest or
// subtopic.
func (s *Server) studyStats(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	scope := store.Scope{
		ContestID:  c.QueryParam("contestId"),
		SubtopicID: c.QueryParam("subtopicId"),
	}
	stats, err := s.review.StudyStats(c.Request().Context(), userID, scope)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
