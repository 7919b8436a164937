package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type KnowledgePoint struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CourseID    int64  `json:"courseId"`
	ParentID    int64  `json:"parentId,omitempty"`
	Difficulty  int    `json:"difficulty,omitempty"`
}

// Relation links two knowledge points (prerequisite, related, part-of).
type Relation struct {
	ID       int64  `json:"id"`
	SourceID int64  `json:"sourceId"`
	TargetID int64  `json:"targetId"`
	Type     string `json:"type"`
}

type KnowledgeService struct {
	c *transport.Client
}

func NewKnowledgeService(c *transport.Client) *KnowledgeService { return &KnowledgeService{c: c} }

// Graph returns the nodes+edges shape the graph view renders.
func (s *KnowledgeService) Graph(ctx context.Context, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/knowledge-points/graph", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *KnowledgeService) Tree(ctx context.Context, courseID int64) (Stats, error) {
	params := url.Values{"courseId": []string{itoa(courseID)}}
	var out Stats
	if err := s.c.Get(ctx, "/knowledge-points/tree", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *KnowledgeService) List(ctx context.Context, params url.Values) ([]KnowledgePoint, error) {
	var points []KnowledgePoint
	if err := s.c.Get(ctx, "/knowledge-points", params, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *KnowledgeService) Get(ctx context.Context, id int64) (*KnowledgePoint, error) {
	var kp KnowledgePoint
	if err := s.c.Get(ctx, "/knowledge-points/"+itoa(id), nil, &kp); err != nil {
		return nil, err
	}
	return &kp, nil
}

func (s *KnowledgeService) Create(ctx context.Context, kp KnowledgePoint) (*KnowledgePoint, error) {
	var created KnowledgePoint
	if err := s.c.Post(ctx, "/knowledge-points", kp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *KnowledgeService) Update(ctx context.Context, id int64, kp KnowledgePoint) (*KnowledgePoint, error) {
	var updated KnowledgePoint
	if err := s.c.Put(ctx, "/knowledge-points/"+itoa(id), kp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *KnowledgeService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/knowledge-points/"+itoa(id), nil, nil)
}

func (s *KnowledgeService) Relations(ctx context.Context, pointID int64) ([]Relation, error) {
	var rels []Relation
	if err := s.c.Get(ctx, "/knowledge-points/"+itoa(pointID)+"/relations", nil, &rels); err != nil {
		return nil, err
	}
	return rels, nil
}

func (s *KnowledgeService) CreateRelation(ctx context.Context, rel Relation) (*Relation, error) {
	var created Relation
	if err := s.c.Post(ctx, "/knowledge-points/relations", rel, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *KnowledgeService) DeleteRelation(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/knowledge-points/relations/"+itoa(id), nil, nil)
}

func (s *KnowledgeService) Statistics(ctx context.Context, params url.Values) (Stats, error) {
	var stats Stats
	if err := s.c.Get(ctx, "/knowledge-points/statistics", params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
