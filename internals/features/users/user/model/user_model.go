package model

import "time"

// UserModel merepresentasikan tabel users.
// ID string (uuid) diterbitkan subsistem auth, bukan serial DB.
// Role dijaga hook sign-up: paling banyak satu email (ADMIN_EMAIL)
// yang boleh memegang role admin.
type UserModel struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"size:255;unique;not null" json:"email"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Role          string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	PasswordHash  string    `gorm:"column:password_hash" json:"-"`
	GoogleID      *string   `gorm:"size:255;unique" json:"-"`
	Image         *string   `gorm:"size:512" json:"image,omitempty"`
	ImageCldPubID *string   `gorm:"size:255" json:"imageCldPubId,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
