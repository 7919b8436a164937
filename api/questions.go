package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Question struct {
	ID               int64    `json:"id"`
	Type             string   `json:"type"` // single, multiple, blank, essay
	Content          string   `json:"content"`
	Options          []string `json:"options,omitempty"`
	Answer           string   `json:"answer,omitempty"`
	Score            float64  `json:"score"`
	KnowledgePointID int64    `json:"knowledgePointId,omitempty"`
}

type QuestionService struct {
	c *transport.Client
}

func NewQuestionService(c *transport.Client) *QuestionService { return &QuestionService{c: c} }

func (s *QuestionService) List(ctx context.Context, params url.Values) ([]Question, error) {
	var questions []Question
	if err := s.c.Get(ctx, "/questions", params, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*Question, error) {
	var q Question
	if err := s.c.Get(ctx, "/questions/"+itoa(id), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) Create(ctx context.Context, q Question) (*Question, error) {
	var created Question
	if err := s.c.Post(ctx, "/questions", q, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *QuestionService) Update(ctx context.Context, id int64, q Question) (*Question, error) {
	var updated Question
	if err := s.c.Put(ctx, "/questions/"+itoa(id), q, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/questions/"+itoa(id), nil, nil)
}

func (s *QuestionService) Statistics(ctx context.Context, params url.Values) (Stats, error) {
	var stats Stats
	if err := s.c.Get(ctx, "/questions/statistics", params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
