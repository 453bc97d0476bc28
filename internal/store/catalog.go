package store

import (
	"context"
	"fmt"

	"github.com/revisa-app/revisa/ent"
	"github.com/revisa-app/revisa/ent/card"
	"github.com/revisa-app/revisa/ent/contest"
	"github.com/revisa-app/revisa/ent/subtopic"
	"github.com/revisa-app/revisa/ent/topic"
)

type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) CreateContest(ctx context.Context, c *Contest) error {
	row, err := r.client.Contest.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetDescription(c.Description).
		Save(ctx)
	if err != nil {
		return wrapErr("create contest", err)
	}
	c.CreatedAt = row.CreatedAt
	return nil
}

func (r *catalogRepo) CreateTopic(ctx context.Context, t *Topic) error {
	if _, err := r.GetContest(ctx, t.ContestID); err != nil {
		return fmt.Errorf("create topic: contest %s: %w", t.ContestID, err)
	}
	row, err := r.client.Topic.Create().
		SetID(t.ID).
		SetContestID(t.ContestID).
		SetName(t.Name).
		Save(ctx)
	if err != nil {
		return wrapErr("create topic", err)
	}
	t.CreatedAt = row.CreatedAt
	return nil
}

func (r *catalogRepo) CreateSubtopic(ctx context.Context, st *Subtopic) error {
	if _, err := r.GetTopic(ctx, st.TopicID); err != nil {
		return fmt.Errorf("create subtopic: topic %s: %w", st.TopicID, err)
	}
	row, err := r.client.Subtopic.Create().
		SetID(st.ID).
		SetTopicID(st.TopicID).
		SetName(st.Name).
		Save(ctx)
	if err != nil {
		return wrapErr("create subtopic", err)
	}
	st.CreatedAt = row.CreatedAt
	return nil
}

func (r *catalogRepo) CreateCard(ctx context.Context, c *Card) error {
	if _, err := r.GetSubtopic(ctx, c.SubtopicID); err != nil {
		return fmt.Errorf("create card: subtopic %s: %w", c.SubtopicID, err)
	}
	builder := r.client.Card.Create().
		SetID(c.ID).
		SetSubtopicID(c.SubtopicID).
		SetFront(c.Front).
		SetBack(c.Back)
	if c.Difficulty != "" {
		builder = builder.SetDifficulty(c.Difficulty)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return wrapErr("create card", err)
	}
	c.CreatedAt = row.CreatedAt
	return nil
}

func (r *catalogRepo) GetContest(ctx context.Context, id string) (*Contest, error) {
	row, err := r.client.Contest.Query().Where(contest.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get contest", err)
	}
	return &Contest{ID: row.ID, Name: row.Name, Description: row.Description, CreatedAt: row.CreatedAt}, nil
}

func (r *catalogRepo) GetTopic(ctx context.Context, id string) (*Topic, error) {
	row, err := r.client.Topic.Query().Where(topic.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get topic", err)
	}
	return &Topic{ID: row.ID, ContestID: row.ContestID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

func (r *catalogRepo) GetSubtopic(ctx context.Context, id string) (*Subtopic, error) {
	row, err := r.client.Subtopic.Query().Where(subtopic.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get subtopic", err)
	}
	return &Subtopic{ID: row.ID, TopicID: row.TopicID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

func (r *catalogRepo) GetCard(ctx context.Context, id string) (*Card, error) {
	row, err := r.client.Card.Query().Where(card.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get card", err)
	}
	return cardFromEnt(row), nil
}

func (r *catalogRepo) TopicsByContest(ctx context.Context, contestID string) ([]*Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.ContestID(contestID)).
		Order(ent.Asc(topic.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, wrapErr("topics by contest", err)
	}
	topics := make([]*Topic, len(rows))
	for i, row := range rows {
		topics[i] = &Topic{ID: row.ID, ContestID: row.ContestID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return topics, nil
}

func (r *catalogRepo) SubtopicsByTopic(ctx context.Context, topicID string) ([]*Subtopic, error) {
	rows, err := r.client.Subtopic.Query().
		Where(subtopic.TopicID(topicID)).
		Order(ent.Asc(subtopic.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, wrapErr("subtopics by topic", err)
	}
	subtopics := make([]*Subtopic, len(rows))
	for i, row := range rows {
		subtopics[i] = &Subtopic{ID: row.ID, TopicID: row.TopicID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return subtopics, nil
}

func (r *catalogRepo) CardsBySubtopic(ctx context.Context, subtopicID string) ([]*Card, error) {
	rows, err := r.client.Card.Query().
		Where(card.SubtopicID(subtopicID)).
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, wrapErr("cards by subtopic", err)
	}
	cards := make([]*Card, len(rows))
	for i, row := range rows {
		cards[i] = cardFromEnt(row)
	}
	return cards, nil
}

func (r *catalogRepo) CountCardsBySubtopic(ctx context.Context, subtopicID string) (int, error) {
	n, err := r.client.Card.Query().
		Where(card.SubtopicID(subtopicID)).
		Count(ctx)
	if err != nil {
		return 0, wrapErr("count cards by subtopic", err)
	}
	return n, nil
}

func (r *catalogRepo) ResolveCard(ctx context.Context, cardID string) (*CardContext, error) {
	c, err := r.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	st, err := r.GetSubtopic(ctx, c.SubtopicID)
	if err != nil {
		return nil, fmt.Errorf("resolve card %s: %w", cardID, err)
	}
	tp, err := r.GetTopic(ctx, st.TopicID)
	if err != nil {
		return nil, fmt.Errorf("resolve card %s: %w", cardID, err)
	}
	return &CardContext{
		CardID:     c.ID,
		SubtopicID: st.ID,
		TopicID:    tp.ID,
		ContestID:  tp.ContestID,
	}, nil
}

func cardFromEnt(row *ent.Card) *Card {
	return &Card{
		ID:         row.ID,
		SubtopicID: row.SubtopicID,
		Front:      row.Front,
		Back:       row.Back,
		Difficulty: row.Difficulty,
		CreatedAt:  row.CreatedAt,
	}
}
