package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := GenerateInviteCode()

		_, err := uuid.Parse(code)
		assert.NoError(t, err, "invite code harus uuid valid")

		_, dup := seen[code]
		assert.False(t, dup, "invite code tidak boleh berulang")
		seen[code] = struct{}{}
	}
}
