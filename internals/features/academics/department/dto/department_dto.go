package dto

import (
	"strings"

	m "classroom_backend/internals/features/academics/department/model"
)

type CreateDepartmentRequest struct {
	Code        string  `json:"code" validate:"required,min=1,max=50"`
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r *CreateDepartmentRequest) Normalize() {
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

func (r CreateDepartmentRequest) ToModel() m.DepartmentModel {
	return m.DepartmentModel{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
	}
}
