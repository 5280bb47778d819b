package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubjectFilters(t *testing.T) {
	t.Run("no filters means no where clause", func(t *testing.T) {
		assert.Empty(t, buildSubjectFilters("", ""))
		assert.Empty(t, buildSubjectFilters("   ", "  "))
	})

	t.Run("search matches name OR code", func(t *testing.T) {
		conds := buildSubjectFilters("calc", "")
		assert.Len(t, conds, 1)
		assert.Equal(t, "(subjects.name ILIKE ? OR subjects.code ILIKE ?)", conds[0].query)
		assert.Equal(t, []any{"%calc%", "%calc%"}, conds[0].args)
	})

	t.Run("department filter targets department name", func(t *testing.T) {
		conds := buildSubjectFilters("", "Math")
		assert.Len(t, conds, 1)
		assert.Equal(t, "departments.name ILIKE ?", conds[0].query)
		assert.Equal(t, []any{"%Math%"}, conds[0].args)
	})

	t.Run("search and department combine as AND", func(t *testing.T) {
		conds := buildSubjectFilters("calc", "Math")
		// dua predikat terpisah → GORM menggabungkan dengan AND
		assert.Len(t, conds, 2)
		assert.Equal(t, "(subjects.name ILIKE ? OR subjects.code ILIKE ?)", conds[0].query)
		assert.Equal(t, "departments.name ILIKE ?", conds[1].query)
	})

	t.Run("terms are trimmed", func(t *testing.T) {
		conds := buildSubjectFilters("  calc  ", "")
		assert.Equal(t, []any{"%calc%", "%calc%"}, conds[0].args)
	})
}
