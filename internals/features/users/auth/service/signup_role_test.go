package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classroom_backend/internals/constants"
)

const adminEmail = "admin@university.edu"

func TestResolveSignupRole(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		requested string
		wantRole  string
		wantErr   error
	}{
		{
			name:      "admin role with wrong email rejected",
			email:     "mallory@university.edu",
			requested: constants.RoleAdmin,
			wantErr:   ErrAdminEmailOnly,
		},
		{
			name:      "admin email with student request force-promoted",
			email:     adminEmail,
			requested: constants.RoleStudent,
			wantRole:  constants.RoleAdmin,
		},
		{
			name:     "admin email without role force-promoted",
			email:    adminEmail,
			wantRole: constants.RoleAdmin,
		},
		{
			name:      "admin email requesting admin allowed",
			email:     adminEmail,
			requested: constants.RoleAdmin,
			wantRole:  constants.RoleAdmin,
		},
		{
			name:     "plain sign-up defaults to student",
			email:    "bob@university.edu",
			wantRole: constants.RoleStudent,
		},
		{
			name:      "teacher passes through",
			email:     "carol@university.edu",
			requested: constants.RoleTeacher,
			wantRole:  constants.RoleTeacher,
		},
		{
			name:      "unknown role rejected",
			email:     "dave@university.edu",
			requested: "superuser",
			wantErr:   ErrInvalidRole,
		},
		{
			// exact match case-sensitive: beda kapital ≠ admin email
			name:      "email match is case-sensitive",
			email:     "Admin@university.edu",
			requested: constants.RoleAdmin,
			wantErr:   ErrAdminEmailOnly,
		},
		{
			name:     "case variant without admin request stays student",
			email:    "Admin@university.edu",
			wantRole: constants.RoleStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ResolveSignupRole(tt.email, tt.requested, adminEmail)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, role)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}
