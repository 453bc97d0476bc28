package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/revisa-app/revisa/internal/cardgen"
	"github.com/revisa-app/revisa/internal/store"
)

type createContestRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type createTopicRequest struct {
	ContestID string `json:"contestId" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

type createSubtopicRequest struct {
	TopicID string `json:"topicId" validate:"required"`
	Name    string `json:"name" validate:"required"`
}

type createCardRequest struct {
	SubtopicID string `json:"subtopicId" validate:"required"`
	Front      string `json:"front" validate:"required"`
	Back       string `json:"back" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func (s *Server) createContest(c echo.Context) error {
	var req createContestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	contest := &store.Contest{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.catalog.CreateContest(c.Request().Context(), contest); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, contest)
}

func (s *Server) createTopic(c echo.Context) error {
	var req createTopicRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	topic := &store.Topic{
		ID:        uuid.NewString(),
		ContestID: req.ContestID,
		Name:      req.Name,
	}
	if err := s.catalog.CreateTopic(c.Request().Context(), topic); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, topic)
}

func (s *Server) createSubtopic(c echo.Context) error {
	var req createSubtopicRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	subtopic := &store.Subtopic{
		ID:      uuid.NewString(),
		TopicID: req.TopicID,
		Name:    req.Name,
	}
	if err := s.catalog.CreateSubtopic(c.Request().Context(), subtopic); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, subtopic)
}

func (s *Server) createCard(c echo.Context) error {
	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	card := &store.Card{
		ID:         uuid.NewString(),
		SubtopicID: req.SubtopicID,
		Front:      req.Front,
		Back:       req.Back,
		Difficulty: req.Difficulty,
	}
	if err := s.catalog.CreateCard(c.Request().Context(), card); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (s *Server) listCards(c echo.Context) error {
	subtopicID := c.Param("id")
	if _, err := s.catalog.GetSubtopic(c.Request().Context(), subtopicID); err != nil {
		return s.fail(c, err)
	}

	cards, err := s.catalog.CardsBySubtopic(c.Request().Context(), subtopicID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"cards": cards, "count": len(cards)})
}

type generateCardsRequest struct {
	SubtopicID string `json:"subtopicId" validate:"required"`
	Office     string `json:"office"`
	Count      int    `json:"count" validate:"gte=0,lte=20"`

	// Persist stores the generated drafts as catalog cards when true.
	// Otherwise the drafts are returned for the caller to review.
	Persist bool `json:"persist"`
}

func (s *Server) generateCards(c echo.Context) error {
	var req generateCardsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()

	// Resolve the hierarchy to give the model its study context.
	subtopic, err := s.catalog.GetSubtopic(ctx, req.SubtopicID)
	if err != nil {
		return s.fail(c, err)
	}
	topic, err := s.catalog.GetTopic(ctx, subtopic.TopicID)
	if err != nil {
		return s.fail(c, err)
	}
	contest, err := s.catalog.GetContest(ctx, topic.ContestID)
	if err != nil {
		return s.fail(c, err)
	}

	drafts, err := s.gen.GenerateCards(ctx, cardgen.Request{
		ContestName:  contest.Name,
		Office:       req.Office,
		TopicName:    topic.Name,
		SubtopicName: subtopic.Name,
		Count:        req.Count,
	})
	if err != nil {
		return s.fail(c, err)
	}

	if !req.Persist {
		return c.JSON(http.StatusOK, map[string]any{"cards": drafts, "count": len(drafts)})
	}

	cards := make([]*store.Card, len(drafts))
	for i, d := range drafts {
		card := &store.Card{
			ID:         uuid.NewString(),
			SubtopicID: subtopic.ID,
			Front:      d.Front,
			Back:       d.Back,
			Difficulty: d.Difficulty,
		}
		if err := s.catalog.CreateCard(ctx, card); err != nil {
			return s.fail(c, err)
		}
		cards[i] = card
	}
	return c.JSON(http.StatusCreated, map[string]any{"cards": cards, "count": len(cards)})
}
