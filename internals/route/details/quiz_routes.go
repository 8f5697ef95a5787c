package details

import (
	"github.com/gofiber/fiber/v2"

	analyticsRoute "quizku_backend/internals/features/quizzes/analytics/route"
	questionRepo "quizku_backend/internals/features/quizzes/questions/repository"
	questionRoute "quizku_backend/internals/features/quizzes/questions/route"
	resultRepo "quizku_backend/internals/features/quizzes/results/repository"
	resultRoute "quizku_backend/internals/features/quizzes/results/route"
	subjectRepo "quizku_backend/internals/features/quizzes/subjects/repository"
	subjectRoute "quizku_backend/internals/features/quizzes/subjects/route"
	userRepo "quizku_backend/internals/features/users/user/repository"
)

type QuizRepos struct {
	Users     userRepo.UserRepository
	Subjects  subjectRepo.SubjectRepository
	Questions questionRepo.QuestionRepository
	Results   resultRepo.ResultRepository
}

// QuizRoutes: subjects, questions, results & analytics.
func QuizRoutes(api fiber.Router, authMW, adminMW fiber.Handler, r QuizRepos) {
	subjectRoute.SubjectRoutes(api, authMW, adminMW, r.Subjects)
	questionRoute.QuestionRoutes(api, adminMW, r.Questions, r.Subjects)
	resultRoute.ResultRoutes(api, authMW, r.Results)
	analyticsRoute.AnalyticsRoutes(api, authMW, adminMW, r.Results, r.Users)
}
