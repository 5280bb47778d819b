package dto

import (
	m "classroom_backend/internals/features/users/user/model"
)

// UserResponse: bentuk aman user untuk dikirim keluar (tanpa hash).
type UserResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Image         *string `json:"image,omitempty"`
	ImageCldPubID *string `json:"imageCldPubId,omitempty"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		Image:         u.Image,
		ImageCldPubID: u.ImageCldPubID,
	}
}

func FromUserModels(users []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUserModel(u))
	}
	return out
}
