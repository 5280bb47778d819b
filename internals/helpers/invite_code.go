package helper

import "github.com/google/uuid"

// GenerateInviteCode membuat kode undangan kelas.
// Selalu dibuat di server; kode kiriman client tidak pernah dipakai.
func GenerateInviteCode() string {
	return uuid.NewString()
}
