package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultModel: satu percobaan kuis. Immutable, hanya bisa dihapus massal oleh pemiliknya.
type ResultModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_results_user_created,priority:1" json:"userId"`
	Subject   string    `gorm:"type:text;not null" json:"subject"`
	Score     int       `gorm:"not null" json:"score"`
	Total     int       `gorm:"not null" json:"total"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_results_user_created,priority:2;index:idx_results_created" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ResultModel) TableName() string {
	return "results"
}
