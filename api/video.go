package api

import (
	"context"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

// VideoService wraps the /video-learning endpoints tracking how students
// watch course videos.
type VideoService struct {
	c *transport.Client
}

func NewVideoService(c *transport.Client) *VideoService { return &VideoService{c: c} }

// VideoEvent is one playback event (play, pause, seek, complete).
type VideoEvent struct {
	TaskID   int64   `json:"taskId"`
	Type     string  `json:"type"`
	Position float64 `json:"position"` // seconds
	Speed    float64 `json:"speed,omitempty"`
}

func (s *VideoService) RecordEvent(ctx context.Context, ev VideoEvent) error {
	return s.c.Post(ctx, "/video-learning/record-event", ev, nil)
}

func (s *VideoService) Analytics(ctx context.Context, taskID int64, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/video-learning/analytics/"+itoa(taskID), params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VideoService) Heatmap(ctx context.Context, taskID int64, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/video-learning/heatmap/"+itoa(taskID), params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VideoService) QualityReport(ctx context.Context, taskID int64, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/video-learning/quality-report/"+itoa(taskID), params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VideoService) Progress(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/video-learning/progress/"+itoa(userID), params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VideoService) Statistics(ctx context.Context, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, "/video-learning/statistics", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
