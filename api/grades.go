package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Grade struct {
	ID           int64   `json:"id"`
	StudentID    int64   `json:"studentId"`
	StudentName  string  `json:"studentName"`
	CourseID     int64   `json:"courseId"`
	TaskID       int64   `json:"taskId,omitempty"`
	SubmissionID int64   `json:"submissionId,omitempty"`
	Score        float64 `json:"score"`
	Feedback     string  `json:"feedback,omitempty"`
	GradedAt     string  `json:"gradedAt,omitempty"`
}

type GradeService struct {
	c *transport.Client
}

func NewGradeService(c *transport.Client) *GradeService { return &GradeService{c: c} }

func (s *GradeService) List(ctx context.Context, params url.Values) ([]Grade, error) {
	var grades []Grade
	if err := s.c.Get(ctx, "/grades", params, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// Export downloads the grade sheet as a binary report.
func (s *GradeService) Export(ctx context.Context, filter map[string]interface{}) (*transport.Blob, error) {
	req := &transport.Request{
		Method: http.MethodPost,
		Path:   "/grades/export",
		Body:   filter,
		Binary: true,
	}
	resp, err := s.c.Do(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	return transport.BlobFrom(resp), nil
}

// GradeSubmission sets the score and feedback on one submission.
func (s *GradeService) GradeSubmission(ctx context.Context, submissionID int64, score float64, feedback string) (*Grade, error) {
	body := map[string]interface{}{"score": score, "feedback": feedback}
	var grade Grade
	if err := s.c.Put(ctx, "/grades/"+itoa(submissionID)+"/grade", body, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

func (s *GradeService) Statistics(ctx context.Context, params url.Values) (Stats, error) {
	var stats Stats
	if err := s.c.Get(ctx, "/grades/statistics", params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
