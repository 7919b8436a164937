package api

import (
	"context"
	"io"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CourseID    int64  `json:"courseId"`
	Type        string `json:"type,omitempty"` // homework, video, reading
	Deadline    string `json:"deadline,omitempty"`
}

type Submission struct {
	ID          int64   `json:"id"`
	TaskID      int64   `json:"taskId"`
	StudentID   int64   `json:"studentId"`
	StudentName string  `json:"studentName,omitempty"`
	FileName    string  `json:"fileName,omitempty"`
	Content     string  `json:"content,omitempty"`
	Score       float64 `json:"score,omitempty"`
	Feedback    string  `json:"feedback,omitempty"`
	SubmittedAt string  `json:"submittedAt,omitempty"`
}

// TaskService wraps /tasks and the /submissions endpoints that belong to them.
type TaskService struct {
	c *transport.Client
}

func NewTaskService(c *transport.Client) *TaskService { return &TaskService{c: c} }

func (s *TaskService) Create(ctx context.Context, task Task) (*Task, error) {
	var created Task
	if err := s.c.Post(ctx, "/tasks", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *TaskService) List(ctx context.Context, params url.Values) ([]Task, error) {
	var tasks []Task
	if err := s.c.Get(ctx, "/tasks", params, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*Task, error) {
	var task Task
	if err := s.c.Get(ctx, "/tasks/"+itoa(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Submit uploads the student's work for a task as multipart form data.
func (s *TaskService) Submit(ctx context.Context, taskID int64, fileName string, file io.Reader) (*Submission, error) {
	fields := map[string]string{"taskId": itoa(taskID)}
	files := []transport.File{{Field: "file", Name: fileName, Content: file}}
	var sub Submission
	if err := s.c.Upload(ctx, "/submissions", fields, files, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// MySubmissions lists the current student's submissions for a task.
func (s *TaskService) MySubmissions(ctx context.Context, taskID int64) ([]Submission, error) {
	params := url.Values{"taskId": []string{itoa(taskID)}}
	var subs []Submission
	if err := s.c.Get(ctx, "/submissions/mine", params, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Submissions lists every submission for a task (teacher view).
func (s *TaskService) Submissions(ctx context.Context, taskID int64) ([]Submission, error) {
	params := url.Values{"taskId": []string{itoa(taskID)}}
	var subs []Submission
	if err := s.c.Get(ctx, "/submissions", params, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *TaskService) GradeSubmission(ctx context.Context, submissionID int64, score float64, feedback string) error {
	body := map[string]interface{}{"score": score, "feedback": feedback}
	return s.c.Put(ctx, "/submissions/"+itoa(submissionID)+"/grade", body, nil)
}
