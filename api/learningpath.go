package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type LearningPath struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Progress    float64 `json:"progress,omitempty"`
	NodeCount   int    `json:"nodeCount,omitempty"`
	Status      string `json:"status,omitempty"`
}

type LearningPathService struct {
	c *transport.Client
}

func NewLearningPathService(c *transport.Client) *LearningPathService {
	return &LearningPathService{c: c}
}

func (s *LearningPathService) List(ctx context.Context, params url.Values) ([]LearningPath, error) {
	var paths []LearningPath
	if err := s.c.Get(ctx, "/learning-paths", params, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// ForKnowledgePoint lists the paths that cover one knowledge point.
func (s *LearningPathService) ForKnowledgePoint(ctx context.Context, knowledgePointID int64, params url.Values) ([]LearningPath, error) {
	var paths []LearningPath
	if err := s.c.Get(ctx, "/learning-paths/knowledge-point/"+itoa(knowledgePointID), params, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *LearningPathService) Recommended(ctx context.Context, params url.Values) ([]LearningPath, error) {
	var paths []LearningPath
	if err := s.c.Get(ctx, "/learning-paths/recommended", params, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *LearningPathService) Start(ctx context.Context, pathID int64) error {
	return s.c.Post(ctx, "/learning-paths/"+itoa(pathID)+"/start", nil, nil)
}

func (s *LearningPathService) CompleteNode(ctx context.Context, pathID, nodeID int64) error {
	return s.c.Post(ctx, "/learning-paths/"+itoa(pathID)+"/nodes/"+itoa(nodeID)+"/complete", nil, nil)
}

// Generate asks the backend (AI-assisted) to build a path for the request.
// Note the singular prefix: the generation endpoints live under
// /learning-path, not /learning-paths.
func (s *LearningPathService) Generate(ctx context.Context, req map[string]interface{}) (Stats, error) {
	var out Stats
	if err := s.c.Post(ctx, "/learning-path/generate", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LearningPathService) Detail(ctx context.Context, pathID int64) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/learning-path/path/"+itoa(pathID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
