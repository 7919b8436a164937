package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/darasa/darasa-go/transport"
)

// AnalyticsService wraps the /analytics endpoints: one dashboard plus a
// long tail of specialized breakdowns, all returning loose JSON the charts
// consume directly.
type AnalyticsService struct {
	c *transport.Client
}

func NewAnalyticsService(c *transport.Client) *AnalyticsService { return &AnalyticsService{c: c} }

func (s *AnalyticsService) get(ctx context.Context, path string, params url.Values) (Stats, error) {
	var out Stats
	if err := s.c.Get(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AnalyticsService) Dashboard(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/dashboard", params)
}

func (s *AnalyticsService) Teacher(ctx context.Context, teacherID int64) (Stats, error) {
	return s.get(ctx, "/analytics/teacher/"+itoa(teacherID), nil)
}

// per-user breakdowns

func (s *AnalyticsService) UserDashboard(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/user-dashboard/"+itoa(userID), params)
}

func (s *AnalyticsService) RecentActivities(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/recent-activities/"+itoa(userID), params)
}

func (s *AnalyticsService) LearningTrends(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/learning-trends/"+itoa(userID), params)
}

func (s *AnalyticsService) KnowledgeMastery(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/knowledge-mastery/"+itoa(userID), params)
}

func (s *AnalyticsService) WeakPoints(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/weak-points/"+itoa(userID), params)
}

func (s *AnalyticsService) LearningRecommendations(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/learning-recommendations/"+itoa(userID), params)
}

func (s *AnalyticsService) ProgressStats(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/progress-stats/"+itoa(userID), params)
}

func (s *AnalyticsService) BehaviorStats(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/behavior-stats/"+itoa(userID), params)
}

func (s *AnalyticsService) LearningEfficiency(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/learning-efficiency/"+itoa(userID), params)
}

func (s *AnalyticsService) GradeDistribution(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/grade-distribution/"+itoa(userID), params)
}

func (s *AnalyticsService) SubjectPerformance(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/subject-performance/"+itoa(userID), params)
}

func (s *AnalyticsService) GradeTrend(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/grade-trend/"+itoa(userID), params)
}

func (s *AnalyticsService) TimeDistribution(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/time-distribution/"+itoa(userID), params)
}

func (s *AnalyticsService) ActivityHeatmap(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/activity-heatmap/"+itoa(userID), params)
}

func (s *AnalyticsService) DeviceUsage(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/device-usage/"+itoa(userID), params)
}

func (s *AnalyticsService) Prediction(ctx context.Context, userID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/prediction/"+itoa(userID), params)
}

// per-course / per-class breakdowns

func (s *AnalyticsService) CourseAnalytics(ctx context.Context, courseID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/course-analytics/"+itoa(courseID), params)
}

func (s *AnalyticsService) ClassPerformance(ctx context.Context, classID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/class-performance/"+itoa(classID), params)
}

// platform-wide breakdowns

func (s *AnalyticsService) Users(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/users", params)
}

func (s *AnalyticsService) Courses(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/courses", params)
}

func (s *AnalyticsService) LearningProgress(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/learning-progress", params)
}

func (s *AnalyticsService) TaskCompletion(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/task-completion", params)
}

func (s *AnalyticsService) ExamScores(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/exam-scores", params)
}

func (s *AnalyticsService) PlatformUsage(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/platform-usage", params)
}

func (s *AnalyticsService) KnowledgePointMastery(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/knowledge-mastery", params)
}

func (s *AnalyticsService) LearningPathAnalysis(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/learning-path", params)
}

func (s *AnalyticsService) CoursePopularity(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/course-popularity", params)
}

func (s *AnalyticsService) SystemMetrics(ctx context.Context, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/system-metrics", params)
}

// per-teacher / per-student breakdowns

func (s *AnalyticsService) TeachingEffectiveness(ctx context.Context, teacherID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/teaching-effectiveness/"+itoa(teacherID), params)
}

func (s *AnalyticsService) StudentBehavior(ctx context.Context, studentID int64, params url.Values) (Stats, error) {
	return s.get(ctx, "/analytics/student-behavior/"+itoa(studentID), params)
}

// report generation and export

func (s *AnalyticsService) GenerateLearningReport(ctx context.Context, studentID int64, req map[string]interface{}) (Stats, error) {
	var out Stats
	if err := s.c.Post(ctx, "/analytics/learning-report/"+itoa(studentID), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AnalyticsService) GenerateTeachingReport(ctx context.Context, teacherID int64, req map[string]interface{}) (Stats, error) {
	var out Stats
	if err := s.c.Post(ctx, "/analytics/teaching-report/"+itoa(teacherID), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportReport downloads one report type as a binary payload.
func (s *AnalyticsService) ExportReport(ctx context.Context, reportType string, params url.Values) (*transport.Blob, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   "/analytics/export/" + reportType,
		Query:  params,
		Binary: true,
	}
	resp, err := s.c.Do(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	return transport.BlobFrom(resp), nil
}
