package dto

import "strings"

// RegisterRequest: body POST /api/auth/register.
// Body di-parse ke tipe ketat dan divalidasi SEBELUM aturan elevasi
// admin jalan; body rusak ditolak lebih dulu.
type RegisterRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=255"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Password      string  `json:"password" validate:"required,min=8,max=128"`
	Role          string  `json:"role" validate:"omitempty,oneof=admin teacher student"`
	Image         *string `json:"image" validate:"omitempty,max=512"`
	ImageCldPubID *string `json:"imageCldPubId" validate:"omitempty,max=255"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest: ID token hasil OAuth Google dari frontend.
// Role opsional hanya dipakai ketika akun baru dibuat.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Role    string `json:"role" validate:"omitempty,oneof=admin teacher student"`
}
