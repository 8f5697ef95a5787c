package dto

import (
	"math"
	"strconv"
	"strings"
	"time"

	"quizku_backend/internals/features/quizzes/questions/model"
)

const (
	DefaultQuizLimit = 5
	MaxQuizLimit     = 50
)

/* =======================================================
   RESPONSE
   ======================================================= */

// QuizQuestion: soal untuk sesi kuis mahasiswa
type QuizQuestion struct {
	ID            string   `json:"id"`
	Subject       string   `json:"subject"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

type QuestionDTO struct {
	QuizQuestion
	CreatedAt time.Time `json:"createdAt"`
}

func toQuiz(q *model.QuestionModel) QuizQuestion {
	opts := []string(q.Options)
	if opts == nil {
		opts = []string{}
	}
	return QuizQuestion{
		ID:            q.ID.String(),
		Subject:       q.Subject,
		Question:      q.Question,
		Options:       opts,
		CorrectOption: q.CorrectOption,
	}
}

func ToQuizQuestions(in []model.QuestionModel) []QuizQuestion {
	out := make([]QuizQuestion, 0, len(in))
	for i := range in {
		out = append(out, toQuiz(&in[i]))
	}
	return out
}

func ToQuestionDTO(q *model.QuestionModel) QuestionDTO {
	return QuestionDTO{QuizQuestion: toQuiz(q), CreatedAt: q.CreatedAt}
}

func ToQuestionDTOList(in []model.QuestionModel) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(in))
	for i := range in {
		out = append(out, ToQuestionDTO(&in[i]))
	}
	return out
}

/* =======================================================
   REQUEST
   ======================================================= */

type CreateQuestionRequest struct {
	Subject       string   `json:"subject" validate:"required,min=1,max=80"`
	Question      string   `json:"question" validate:"required,min=5,max=2000"`
	Options       []string `json:"options" validate:"required,len=4,dive,notblank,max=500"`
	CorrectOption *int     `json:"correctOption" validate:"required,min=0,max=3"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Question = strings.TrimSpace(r.Question)
	for i := range r.Options {
		r.Options[i] = strings.TrimSpace(r.Options[i])
	}
}

func (r *CreateQuestionRequest) ToModel() *model.QuestionModel {
	return &model.QuestionModel{
		Subject:       r.Subject,
		Question:      r.Question,
		Options:       append([]string(nil), r.Options...),
		CorrectOption: *r.CorrectOption,
	}
}

// ParseQuizLimit: kosong / bukan angka → default; angka non-bulat atau
// di luar 1..50 → ok=false.
func ParseQuizLimit(raw string) (limit int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultQuizLimit, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultQuizLimit, true
	}
	if f != math.Trunc(f) || f < 1 || f > MaxQuizLimit {
		return 0, false
	}
	return int(f), true
}
