package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

// AIService wraps the /ai endpoints. These calls can legitimately take a
// long time; the pipeline sets no global timeout for exactly that reason,
// so bound them with a context deadline only where it makes sense.
type AIService struct {
	c *transport.Client
}

func NewAIService(c *transport.Client) *AIService { return &AIService{c: c} }

func (s *AIService) post(ctx context.Context, path string, req map[string]interface{}) (Stats, error) {
	var out Stats
	if err := s.c.Post(ctx, path, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AIService) GenerateQuestions(ctx context.Context, req map[string]interface{}) (Stats, error) {
	return s.post(ctx, "/ai/generate-questions", req)
}

func (s *AIService) AnalyzeSubmission(ctx context.Context, req map[string]interface{}) (Stats, error) {
	return s.post(ctx, "/ai/analyze-submission", req)
}

func (s *AIService) RecommendLearningPath(ctx context.Context, req map[string]interface{}) (Stats, error) {
	return s.post(ctx, "/ai/recommend-learning-path", req)
}

func (s *AIService) GenerateCourseContent(ctx context.Context, req map[string]interface{}) (Stats, error) {
	return s.post(ctx, "/ai/generate-course-content", req)
}

func (s *AIService) GenerateSummary(ctx context.Context, req map[string]interface{}) (Stats, error) {
	return s.post(ctx, "/ai/generate-summary", req)
}

func (s *AIService) DetectPlagiarism(ctx context.Context, req map[string]interface{}) (Stats, error) {
	return s.post(ctx, "/ai/detect-plagiarism", req)
}

// Chat sends one message to the study assistant.
func (s *AIService) Chat(ctx context.Context, message string, history []map[string]interface{}) (Stats, error) {
	req := map[string]interface{}{"message": message}
	if len(history) > 0 {
		req["history"] = history
	}
	return s.post(ctx, "/ai/chat", req)
}

func (s *AIService) Features(ctx context.Context) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/ai/features", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AIService) UsageStats(ctx context.Context, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/ai/usage-stats", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
