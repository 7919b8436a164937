package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Class struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Grade        string `json:"grade,omitempty"`
	TeacherID    int64  `json:"teacherId,omitempty"`
	StudentCount int    `json:"studentCount,omitempty"`
}

type ClassService struct {
	c *transport.Client
}

func NewClassService(c *transport.Client) *ClassService { return &ClassService{c: c} }

func (s *ClassService) List(ctx context.Context, params url.Values) ([]Class, error) {
	var classes []Class
	if err := s.c.Get(ctx, "/classes", params, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) Get(ctx context.Context, id int64) (*Class, error) {
	var class Class
	if err := s.c.Get(ctx, "/classes/"+itoa(id), nil, &class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *ClassService) Create(ctx context.Context, in Class) (*Class, error) {
	var class Class
	if err := s.c.Post(ctx, "/classes", in, &class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *ClassService) Update(ctx context.Context, id int64, in Class) (*Class, error) {
	var class Class
	if err := s.c.Put(ctx, "/classes/"+itoa(id), in, &class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (s *ClassService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/classes/"+itoa(id), nil, nil)
}

func (s *ClassService) AddStudent(ctx context.Context, classID, studentID int64) error {
	return s.c.Post(ctx, "/classes/"+itoa(classID)+"/students/"+itoa(studentID), nil, nil)
}

func (s *ClassService) RemoveStudent(ctx context.Context, classID, studentID int64) error {
	return s.c.Delete(ctx, "/classes/"+itoa(classID)+"/students/"+itoa(studentID), nil, nil)
}
