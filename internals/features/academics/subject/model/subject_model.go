package model

import (
	"time"

	deptModel "classroom_backend/internals/features/academics/department/model"
)

// SubjectModel merepresentasikan tabel subjects.
// department_id wajib menunjuk department yang ada (ON DELETE RESTRICT).
type SubjectModel struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID int       `gorm:"not null;index" json:"departmentId"`
	Code         string    `gorm:"size:50;not null;unique" json:"code"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  *string   `gorm:"size:255" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Department *deptModel.DepartmentModel `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT" json:"department,omitempty"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
