package subjects

import (
	"context"
	"log"

	"quizku_backend/internals/features/quizzes/subjects/model"
	"quizku_backend/internals/features/quizzes/subjects/repository"
)

// DefaultSubjects dipasang saat tabel subject masih kosong.
var DefaultSubjects = []model.SubjectModel{
	{Slug: "python", Label: "Python", Active: true},
	{Slug: "ai", Label: "Artificial Intelligence", Active: true},
	{Slug: "dbms", Label: "DBMS", Active: true},
}

func SeedDefaultSubjects(ctx context.Context, repo repository.SubjectRepository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("ℹ️ %d subject sudah ada, seed default dilewati.", n)
		return nil
	}

	for _, s := range DefaultSubjects {
		s := s
		if err := repo.Create(ctx, &s); err != nil {
			return err
		}
		log.Printf("✅ Subject default '%s' dibuat", s.Label)
	}
	return nil
}
