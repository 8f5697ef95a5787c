package routes

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	questionModel "quizku_backend/internals/features/quizzes/questions/model"
	questionRepo "quizku_backend/internals/features/quizzes/questions/repository"
	resultModel "quizku_backend/internals/features/quizzes/results/model"
	resultRepo "quizku_backend/internals/features/quizzes/results/repository"
	subjectModel "quizku_backend/internals/features/quizzes/subjects/model"
	subjectRepo "quizku_backend/internals/features/quizzes/subjects/repository"
	supportModel "quizku_backend/internals/features/users/support/model"
	supportRepo "quizku_backend/internals/features/users/support/repository"
	userModel "quizku_backend/internals/features/users/user/model"
	userRepo "quizku_backend/internals/features/users/user/repository"
)

// Stores: semua repository yang dipakai route, satu backend (mongo atau postgres).
type Stores struct {
	Users     userRepo.UserRepository
	Subjects  subjectRepo.SubjectRepository
	Questions questionRepo.QuestionRepository
	Results   resultRepo.ResultRepository
	Support   supportRepo.SupportRepository
}

func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Users:     userRepo.NewUserRepositoryGorm(db),
		Subjects:  subjectRepo.NewSubjectRepositoryGorm(db),
		Questions: questionRepo.NewQuestionRepositoryGorm(db),
		Results:   resultRepo.NewResultRepositoryGorm(db),
		Support:   supportRepo.NewSupportRepositoryGorm(db),
	}
}

func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Users:     userRepo.NewUserRepositoryMongo(db),
		Subjects:  subjectRepo.NewSubjectRepositoryMongo(db),
		Questions: questionRepo.NewQuestionRepositoryMongo(db),
		Results:   resultRepo.NewResultRepositoryMongo(db),
		Support:   supportRepo.NewSupportRepositoryMongo(db),
	}
}

// GormModels: urutan AutoMigrate untuk backend postgres.
func GormModels() []any {
	return []any{
		&userModel.UserModel{},
		&subjectModel.SubjectModel{},
		&questionModel.QuestionModel{},
		&resultModel.ResultModel{},
		&supportModel.SupportRequestModel{},
	}
}
