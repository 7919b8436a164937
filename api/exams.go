package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Exam struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CourseID  int64  `json:"courseId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"` // minutes
	Status    string `json:"status"`
	TotalScore float64 `json:"totalScore"`
}

type ExamInput struct {
	Title     string  `json:"title"`
	CourseID  int64   `json:"courseId"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Duration  int     `json:"duration,omitempty"`
	TotalScore float64 `json:"totalScore,omitempty"`
}

// Answer is one submitted answer.
type Answer struct {
	QuestionID int64  `json:"questionId"`
	Content    string `json:"content"`
}

type ExamService struct {
	c *transport.Client
}

func NewExamService(c *transport.Client) *ExamService { return &ExamService{c: c} }

func (s *ExamService) List(ctx context.Context, params url.Values) ([]Exam, error) {
	var exams []Exam
	if err := s.c.Get(ctx, "/exams", params, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (s *ExamService) Get(ctx context.Context, id int64) (*Exam, error) {
	var exam Exam
	if err := s.c.Get(ctx, "/exams/"+itoa(id), nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *ExamService) Create(ctx context.Context, in ExamInput) (*Exam, error) {
	var exam Exam
	if err := s.c.Post(ctx, "/exams", in, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *ExamService) Update(ctx context.Context, id int64, in ExamInput) (*Exam, error) {
	var exam Exam
	if err := s.c.Put(ctx, "/exams/"+itoa(id), in, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *ExamService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/exams/"+itoa(id), nil, nil)
}

// Start opens an exam session for the current student.
func (s *ExamService) Start(ctx context.Context, examID int64) (Stats, error) {
	var out Stats
	if err := s.c.Post(ctx, "/exams/"+itoa(examID)+"/start", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExamService) Submit(ctx context.Context, examID int64, answers []Answer) (Stats, error) {
	var out Stats
	body := map[string]interface{}{"answers": answers}
	if err := s.c.Post(ctx, "/exams/"+itoa(examID)+"/submit", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExamService) Result(ctx context.Context, examID, sessionID int64) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/exams/"+itoa(examID)+"/result/"+itoa(sessionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExamService) Results(ctx context.Context, examID int64) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/exams/"+itoa(examID)+"/results", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExamService) Statistics(ctx context.Context, examID int64) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/exams/"+itoa(examID)+"/statistics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
