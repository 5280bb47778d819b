package dto

import (
	"strings"

	"gorm.io/datatypes"

	m "classroom_backend/internals/features/academics/classes/model"
	deptModel "classroom_backend/internals/features/academics/department/model"
	helper "classroom_backend/internals/helpers"
)

// CreateClassRequest: body POST /api/classes.
// inviteCode dan schedules sengaja TIDAK ada di sini — server yang isi.
type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Description    string  `json:"description" validate:"max=255"`
	SubjectID      int     `json:"subjectId" validate:"required,gt=0"`
	TeacherID      string  `json:"teacherId" validate:"required,uuid4"`
	Capacity       int     `json:"capacity" validate:"required,gt=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive"`
	BannerURL      *string `json:"bannerUrl" validate:"omitempty,max=512"`
	BannerCldPubID *string `json:"bannerCldPubId" validate:"omitempty,max=255"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.TeacherID = strings.TrimSpace(r.TeacherID)
	if r.Status == "" {
		r.Status = m.StatusActive
	}
	trimPtr := func(pp **string) {
		if *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		if v == "" {
			*pp = nil
		} else {
			*pp = &v
		}
	}
	trimPtr(&r.BannerURL)
	trimPtr(&r.BannerCldPubID)
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{
		Name:           r.Name,
		Description:    r.Description,
		SubjectID:      r.SubjectID,
		TeacherID:      r.TeacherID,
		Capacity:       r.Capacity,
		Status:         r.Status,
		BannerURL:      r.BannerURL,
		BannerCldPubID: r.BannerCldPubID,
		InviteCode:     helper.GenerateInviteCode(),
		Schedules:      datatypes.JSON([]byte("[]")),
	}
}

// ClassDetailResponse: payload GET /api/classes/:id —
// class + subject + department + teacher dalam satu amplop.
type ClassDetailResponse struct {
	m.ClassModel
	Department *deptModel.DepartmentModel `json:"department,omitempty"`
}

func FromClassModel(c m.ClassModel) ClassDetailResponse {
	return ClassDetailResponse{
		ClassModel: c,
		Department: c.DepartmentOf(),
	}
}
