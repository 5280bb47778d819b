package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuildClassFilters(t *testing.T) {
	t.Run("no filters means no where clause", func(t *testing.T) {
		assert.Empty(t, buildClassFilters("", "", ""))
	})

	t.Run("search matches name OR invite code", func(t *testing.T) {
		conds := buildClassFilters("algebra", "", "")
		assert.Len(t, conds, 1)
		assert.Equal(t, "(classes.name ILIKE ? OR classes.invite_code ILIKE ?)", conds[0].query)
		assert.Equal(t, []any{"%algebra%", "%algebra%"}, conds[0].args)
	})

	t.Run("subject and teacher filters AND together", func(t *testing.T) {
		conds := buildClassFilters("", "Calculus", "Smith")
		assert.Len(t, conds, 2)
		assert.Equal(t, "subjects.name ILIKE ?", conds[0].query)
		assert.Equal(t, "users.name ILIKE ?", conds[1].query)
	})

	t.Run("all three combine", func(t *testing.T) {
		conds := buildClassFilters("a", "b", "c")
		assert.Len(t, conds, 3)
	})
}

// id non-numerik harus 400 sebelum menyentuh DB.
func TestGetByIDRejectsNonNumericID(t *testing.T) {
	h := &ClassController{} // DB nil: handler wajib berhenti di validasi id

	app := fiber.New()
	app.Get("/api/classes/:id", h.GetByID)

	for _, bad := range []string{"abc", "12x", "-1", "0", "1.5"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/classes/"+bad, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "id=%q", bad)
	}
}
