package api

import (
	"context"
	"io"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Resource struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"` // document, video, link
	Size     int64  `json:"size,omitempty"`
	URL      string `json:"url,omitempty"`
	CourseID int64  `json:"courseId,omitempty"`
}

type ResourceService struct {
	c *transport.Client
}

func NewResourceService(c *transport.Client) *ResourceService { return &ResourceService{c: c} }

// Upload attaches a file to a course as multipart form data.
func (s *ResourceService) Upload(ctx context.Context, courseID int64, fileName string, file io.Reader) (*Resource, error) {
	fields := map[string]string{"courseId": itoa(courseID)}
	files := []transport.File{{Field: "file", Name: fileName, Content: file}}
	var res Resource
	if err := s.c.Upload(ctx, "/resources/upload", fields, files, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ResourceService) List(ctx context.Context, courseID int64) ([]Resource, error) {
	params := url.Values{"courseId": []string{itoa(courseID)}}
	var resources []Resource
	if err := s.c.Get(ctx, "/resources", params, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Download fetches the raw file.
func (s *ResourceService) Download(ctx context.Context, id int64) (*transport.Blob, error) {
	return s.c.Download(ctx, "/resources/download/"+itoa(id), nil)
}
