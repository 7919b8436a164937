// Package api holds the thin endpoint wrappers, one service per backend
// resource. Every call rides on the transport pipeline, which owns auth,
// progress and error handling; nothing here handles those individually.
package api

import (
	"strconv"

	"github.com/darasa/darasa-go/transport"
)

// Stats is the loose JSON shape the statistics and analytics endpoints
// answer with; dashboards consume it as-is.
type Stats map[string]interface{}

// API bundles all resource services over one client.
type API struct {
	Auth          *AuthService
	Users         *UserService
	Courses       *CourseService
	Exams         *ExamService
	Questions     *QuestionService
	Grades        *GradeService
	Tasks         *TaskService
	Knowledge     *KnowledgeService
	LearningPaths *LearningPathService
	Notifications *NotificationService
	Analytics     *AnalyticsService
	AI            *AIService
	Video         *VideoService
	Resources     *ResourceService
	Classes       *ClassService
}

func New(c *transport.Client) *API {
	return &API{
		Auth:          NewAuthService(c),
		Users:         NewUserService(c),
		Courses:       NewCourseService(c),
		Exams:         NewExamService(c),
		Questions:     NewQuestionService(c),
		Grades:        NewGradeService(c),
		Tasks:         NewTaskService(c),
		Knowledge:     NewKnowledgeService(c),
		LearningPaths: NewLearningPathService(c),
		Notifications: NewNotificationService(c),
		Analytics:     NewAnalyticsService(c),
		AI:            NewAIService(c),
		Video:         NewVideoService(c),
		Resources:     NewResourceService(c),
		Classes:       NewClassService(c),
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
