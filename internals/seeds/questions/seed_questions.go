package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"quizku_backend/internals/features/quizzes/questions/model"
	"quizku_backend/internals/features/quizzes/questions/repository"
)

type QuestionSeed struct {
	Subject       string   `json:"subject"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

// SeedQuestionsFromJSON mengisi bank soal dari file JSON, hanya kalau bank soal masih kosong.
// Item yang tidak valid (opsi != 4, index di luar 0..3) dilewati.
func SeedQuestionsFromJSON(ctx context.Context, repo repository.QuestionRepository, filePath string) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("ℹ️ Bank soal sudah berisi %d soal, seed dilewati.", n)
		return nil
	}

	log.Println("📥 Membaca file soal:", filePath)
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca %s: %w", filePath, err)
	}

	var inputs []QuestionSeed
	if err := json.Unmarshal(content, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	records := make([]model.QuestionModel, 0, len(inputs))
	for i, in := range inputs {
		if len(in.Options) != 4 || in.CorrectOption < 0 || in.CorrectOption > 3 || in.Subject == "" {
			log.Printf("❌ Soal #%d tidak valid, dilewati", i)
			continue
		}
		records = append(records, model.QuestionModel{
			Subject:       in.Subject,
			Question:      in.Question,
			Options:       in.Options,
			CorrectOption: in.CorrectOption,
		})
	}

	if err := repo.CreateMany(ctx, records); err != nil {
		return err
	}
	log.Printf("✅ %d soal berhasil di-seed", len(records))
	return nil
}
