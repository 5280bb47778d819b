package service

import (
	"errors"

	"classroom_backend/internals/constants"
)

// ErrAdminEmailOnly dikembalikan saat ada yang minta role admin
// dengan email selain ADMIN_EMAIL.
var ErrAdminEmailOnly = errors.New("Only the designated admin email can register as admin.")

var ErrInvalidRole = errors.New("Invalid role requested.")

// ResolveSignupRole menjalankan aturan elevasi admin SEBELUM user disimpan:
//   - requestedRole == admin && email != adminEmail → tolak, tidak ada yang disimpan
//   - email == adminEmail → role dipaksa admin, apapun yang diminta
//   - selain itu role diteruskan apa adanya, default student
//
// Perbandingan email case-sensitive exact match terhadap satu alamat
// dari konfigurasi.
func ResolveSignupRole(email, requestedRole, adminEmail string) (string, error) {
	if requestedRole == "" {
		requestedRole = constants.RoleStudent
	}
	if !constants.IsValidRole(requestedRole) {
		return "", ErrInvalidRole
	}

	if requestedRole == constants.RoleAdmin && email != adminEmail {
		return "", ErrAdminEmailOnly
	}
	if email == adminEmail {
		return constants.RoleAdmin, nil
	}
	return requestedRole, nil
}
