package seeds

import (
	"context"
	"log"

	"quizku_backend/internals/configs"
	authService "quizku_backend/internals/features/users/auth/service"
	questionRepo "quizku_backend/internals/features/quizzes/questions/repository"
	subjectRepo "quizku_backend/internals/features/quizzes/subjects/repository"
	userRepo "quizku_backend/internals/features/users/user/repository"
	questions "quizku_backend/internals/seeds/questions"
	subjects "quizku_backend/internals/seeds/subjects"
	users "quizku_backend/internals/seeds/users/auth"
)

const (
	questionsFile = "internals/seeds/questions/data_questions.json"
	usersFile     = "internals/seeds/users/auth/data_users.json"
)

// RunAllSeeds dijalankan sekali saat startup sesudah DB siap.
// Subject default & admin bootstrap selalu jalan; data demo hanya kalau RUN_SEEDS=true.
// Kegagalan seed dicatat, tidak menghentikan server.
func RunAllSeeds(ctx context.Context, cfg *configs.Config, u userRepo.UserRepository, s subjectRepo.SubjectRepository, q questionRepo.QuestionRepository) {
	//* Subjects
	if err := subjects.SeedDefaultSubjects(ctx, s); err != nil {
		log.Printf("[ERROR] seed subjects: %v", err)
	}

	//* Admin bootstrap (ADMIN_EMAIL / ADMIN_PASSWORD)
	if err := authService.EnsureAdminUser(ctx, u, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Printf("[ERROR] admin bootstrap: %v", err)
	}

	if !cfg.RunSeeds {
		return
	}

	//* Demo data
	if err := questions.SeedQuestionsFromJSON(ctx, q, questionsFile); err != nil {
		log.Printf("[ERROR] seed questions: %v", err)
	}
	if err := users.SeedUsersFromJSON(ctx, u, usersFile); err != nil {
		log.Printf("[ERROR] seed users: %v", err)
	}
}
