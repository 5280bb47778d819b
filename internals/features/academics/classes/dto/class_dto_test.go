package dto

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "classroom_backend/internals/features/academics/classes/model"
)

var validate = validator.New()

func validRequest() CreateClassRequest {
	return CreateClassRequest{
		Name:      "Linear Algebra A",
		SubjectID: 1,
		TeacherID: uuid.NewString(),
		Capacity:  30,
	}
}

func TestCreateClassRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateClassRequest)
		wantErr bool
	}{
		{"valid minimal", func(r *CreateClassRequest) {}, false},
		{"missing name", func(r *CreateClassRequest) { r.Name = "" }, true},
		{"missing subject", func(r *CreateClassRequest) { r.SubjectID = 0 }, true},
		{"teacher id not uuid", func(r *CreateClassRequest) { r.TeacherID = "42" }, true},
		{"zero capacity", func(r *CreateClassRequest) { r.Capacity = 0 }, true},
		{"bogus status", func(r *CreateClassRequest) { r.Status = "archived" }, true},
		{"inactive status ok", func(r *CreateClassRequest) { r.Status = "inactive" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			req.Normalize()
			err := validate.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeDefaultsStatusActive(t *testing.T) {
	req := validRequest()
	req.Normalize()
	assert.Equal(t, m.StatusActive, req.Status)
}

// invite code selalu buatan server: DTO tidak punya field-nya,
// dan ToModel selalu mengisi kode baru + schedules kosong.
func TestToModelGeneratesInviteCodeAndEmptySchedules(t *testing.T) {
	req := validRequest()
	req.Normalize()

	a := req.ToModel()
	b := req.ToModel()

	assert.NotEmpty(t, a.InviteCode)
	assert.NotEmpty(t, b.InviteCode)
	assert.NotEqual(t, a.InviteCode, b.InviteCode, "tiap create dapat kode unik")

	_, err := uuid.Parse(a.InviteCode)
	assert.NoError(t, err)

	var schedules []any
	assert.NoError(t, json.Unmarshal(a.Schedules, &schedules))
	assert.Empty(t, schedules)
}

// body dengan inviteCode kiriman client tidak pernah sampai ke model.
func TestClientSuppliedInviteCodeIgnored(t *testing.T) {
	var req CreateClassRequest
	body := []byte(`{"name":"X","subjectId":1,"teacherId":"` + uuid.NewString() + `","capacity":10,"inviteCode":"HACKED"}`)
	assert.NoError(t, json.Unmarshal(body, &req))
	req.Normalize()

	got := req.ToModel()
	assert.NotEqual(t, "HACKED", got.InviteCode)
	_, err := uuid.Parse(got.InviteCode)
	assert.NoError(t, err)
}
