package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel/collection users
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:120;not null" json:"name"`
	RegisterNumber string    `gorm:"size:64;not null;uniqueIndex:uq_users_register_number" json:"registerNumber"`
	Department     string    `gorm:"size:120;not null" json:"department"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`
	Mobile         string    `gorm:"size:32;not null" json:"mobile"`
	Password       string    `gorm:"not null" json:"-"`
	CollegeName    string    `gorm:"size:160;not null;default:'Your College'" json:"collegeName"`
	Role           string    `gorm:"type:varchar(16);not null;default:'student';index" json:"role"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// ProfileUpdate: field profil yang boleh diubah pemilik akun. nil = tidak diubah.
type ProfileUpdate struct {
	Name        *string
	Department  *string
	Mobile      *string
	CollegeName *string
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Department == nil && p.Mobile == nil && p.CollegeName == nil
}

// Apply menyalin field yang diisi ke model.
func (p ProfileUpdate) Apply(u *UserModel) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Mobile != nil {
		u.Mobile = *p.Mobile
	}
	if p.CollegeName != nil {
		u.CollegeName = *p.CollegeName
	}
}
