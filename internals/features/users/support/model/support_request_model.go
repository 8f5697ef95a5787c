package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportRequestModel: laporan kendala dari user (tabel support_requests)
type SupportRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_support_requests_user" json:"userId"`
	IssueType   string    `gorm:"size:80;not null" json:"issueType"`
	Subject     string    `gorm:"size:200;not null" json:"subject"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SupportRequestModel) TableName() string {
	return "support_requests"
}
