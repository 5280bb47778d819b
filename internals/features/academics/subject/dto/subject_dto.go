package dto

import (
	"strings"

	m "classroom_backend/internals/features/academics/subject/model"
)

type CreateSubjectRequest struct {
	DepartmentID int     `json:"departmentId" validate:"required,gt=0"`
	Code         string  `json:"code" validate:"required,min=1,max=50"`
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=255"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		DepartmentID: r.DepartmentID,
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
	}
}
