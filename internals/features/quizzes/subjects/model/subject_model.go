package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel: mata uji kuis. Non-aktif = disembunyikan dari mahasiswa, data historis tetap.
type SubjectModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug      string    `gorm:"size:64;not null;uniqueIndex:uq_subjects_slug" json:"slug"`
	Label     string    `gorm:"size:80;not null;uniqueIndex:uq_subjects_label" json:"label"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
