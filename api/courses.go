package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

// Course is the course summary/detail shape.
type Course struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	CoverURL     string `json:"coverUrl"`
	TeacherID    int64  `json:"teacherId"`
	TeacherName  string `json:"teacherName"`
	StudentCount int    `json:"studentCount"`
	CreatedAt    string `json:"createdAt"`
}

// CourseInput is the create/update payload (teacher and admin only;
// enforcement is server-side).
type CourseInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	CoverURL    string `json:"coverUrl,omitempty"`
}

type CourseService struct {
	c *transport.Client
}

func NewCourseService(c *transport.Client) *CourseService { return &CourseService{c: c} }

func (s *CourseService) List(ctx context.Context, params url.Values) ([]Course, error) {
	var courses []Course
	if err := s.c.Get(ctx, "/courses", params, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id int64) (*Course, error) {
	var course Course
	if err := s.c.Get(ctx, "/courses/"+itoa(id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Create(ctx context.Context, in CourseInput) (*Course, error) {
	var course Course
	if err := s.c.Post(ctx, "/courses", in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Update(ctx context.Context, id int64, in CourseInput) (*Course, error) {
	var course Course
	if err := s.c.Put(ctx, "/courses/"+itoa(id), in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/courses/"+itoa(id), nil, nil)
}

// Enroll signs the current student up for the course.
func (s *CourseService) Enroll(ctx context.Context, id int64) error {
	return s.c.Post(ctx, "/courses/"+itoa(id)+"/enroll", nil, nil)
}

func (s *CourseService) Students(ctx context.Context, id int64, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/courses/"+itoa(id)+"/students", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CourseService) Progress(ctx context.Context, id int64, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/courses/"+itoa(id)+"/progress", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CourseService) Statistics(ctx context.Context, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/courses/statistics", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CourseService) Analytics(ctx context.Context, id int64) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/courses/"+itoa(id)+"/analytics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CourseService) Resources(ctx context.Context, id int64, params url.Values) ([]Resource, error) {
	var resources []Resource
	if err := s.c.Get(ctx, "/courses/"+itoa(id)+"/resources", params, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// KnowledgePointResources lists the resources attached to one knowledge point.
func (s *CourseService) KnowledgePointResources(ctx context.Context, knowledgePointID int64) ([]Resource, error) {
	var resources []Resource
	if err := s.c.Get(ctx, "/knowledge-points/"+itoa(knowledgePointID)+"/resources", nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// RecordResourceAccess notes that the current user opened a resource.
func (s *CourseService) RecordResourceAccess(ctx context.Context, resourceID int64) error {
	return s.c.Post(ctx, "/resources/"+itoa(resourceID)+"/access", nil, nil)
}
