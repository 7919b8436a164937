package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Category  string `json:"category,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// NotificationSummary backs the unread badge.
type NotificationSummary struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

type NotificationService struct {
	c *transport.Client
}

func NewNotificationService(c *transport.Client) *NotificationService {
	return &NotificationService{c: c}
}

func (s *NotificationService) List(ctx context.Context, params url.Values) ([]Notification, error) {
	var notifications []Notification
	if err := s.c.Get(ctx, "/notifications", params, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *NotificationService) Summary(ctx context.Context) (*NotificationSummary, error) {
	var summary NotificationSummary
	if err := s.c.Get(ctx, "/notifications/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Send targets specific users or roles; teacher/admin side.
func (s *NotificationService) Send(ctx context.Context, req map[string]interface{}) error {
	return s.c.Post(ctx, "/notifications/send", req, nil)
}

func (s *NotificationService) Create(ctx context.Context, n Notification) (*Notification, error) {
	var created Notification
	if err := s.c.Post(ctx, "/notifications", n, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, "/notifications/"+itoa(id), nil, nil)
}

func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return s.c.Put(ctx, "/notifications/"+itoa(id)+"/read", nil, nil)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.c.Put(ctx, "/notifications/mark-all-read", nil, nil)
}

func (s *NotificationService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := s.c.Get(ctx, "/notifications/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *NotificationService) Statistics(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := s.c.Get(ctx, "/notifications/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
