package model

import "time"

// DepartmentModel merepresentasikan tabel departments.
// Subjects me-refer ke sini dengan ON DELETE RESTRICT: department
// tidak bisa dihapus selama masih punya subject.
type DepartmentModel struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"size:50;not null;unique" json:"code"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"size:255" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
