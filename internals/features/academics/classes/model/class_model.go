package model

import (
	"time"

	"gorm.io/datatypes"

	deptModel "classroom_backend/internals/features/academics/department/model"
	subjectModel "classroom_backend/internals/features/academics/subject/model"
	userModel "classroom_backend/internals/features/users/user/model"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ClassModel merepresentasikan tabel classes.
// invite_code unik dan SELALU dibuat server; schedules dibuat kosong ([])
// saat create dan diisi fitur penjadwalan nanti.
type ClassModel struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	SubjectID     int            `gorm:"not null;index" json:"subjectId"`
	TeacherID     string         `gorm:"type:uuid;not null;index" json:"teacherId"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"size:255" json:"description"`
	Capacity      int            `gorm:"not null" json:"capacity"`
	Status        string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	BannerURL     *string        `gorm:"size:512" json:"bannerUrl,omitempty"`
	BannerCldPubID *string       `gorm:"size:255" json:"bannerCldPubId,omitempty"`
	InviteCode    string         `gorm:"size:64;not null;unique" json:"inviteCode"`
	Schedules     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"schedules"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Subject *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:RESTRICT" json:"subject,omitempty"`
	Teacher *userModel.UserModel       `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// DepartmentOf mengambil department lewat subject (untuk halaman detail).
func (m ClassModel) DepartmentOf() *deptModel.DepartmentModel {
	if m.Subject == nil {
		return nil
	}
	return m.Subject.Department
}
