package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionModel: soal pilihan ganda, selalu 4 opsi. Subject = label subject.
type QuestionModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Subject       string                      `gorm:"size:80;not null;index:idx_questions_subject_created,priority:1" json:"subject"`
	Question      string                      `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectOption int                         `gorm:"not null" json:"correctOption"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime;index:idx_questions_subject_created,priority:2" json:"createdAt"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// QuestionFilter: Subject kosong = semua subject, Limit <= 0 = tanpa batas.
type QuestionFilter struct {
	Subject     string
	Limit       int
	NewestFirst bool
}
