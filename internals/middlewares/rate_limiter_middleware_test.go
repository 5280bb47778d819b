package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"classroom_backend/internals/constants"
)

// limiterApp memalsukan hasil session middleware lalu memasang limiter.
func limiterApp(role, userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != constants.RoleGuest {
			c.Locals(LocUserRole, role)
			c.Locals(LocUserID, userID)
		}
		return c.Next()
	})
	app.Use(RoleRateLimiter())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func drain(t *testing.T, app *fiber.App, n int) []int {
	t.Helper()
	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		if err != nil {
			t.Fatalf("app.Test() failed: %v", err)
		}
		codes = append(codes, resp.StatusCode)
	}
	return codes
}

func TestRoleRateLimiterBudgets(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		userID string
		budget int
	}{
		{"guest gets 5 per minute", constants.RoleGuest, "", GuestLimitPerMinute},
		{"student gets 10 per minute", constants.RoleStudent, "1d000000-0000-4000-8000-000000000001", StudentLimitPerMinute},
		{"teacher gets 10 per minute", constants.RoleTeacher, "1d000000-0000-4000-8000-000000000002", TeacherLimitPerMinute},
		{"admin gets 20 per minute", constants.RoleAdmin, "1d000000-0000-4000-8000-000000000003", AdminLimitPerMinute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := limiterApp(tt.role, tt.userID)
			codes := drain(t, app, tt.budget+1)

			for i := 0; i < tt.budget; i++ {
				assert.Equal(t, fiber.StatusOK, codes[i], "request %d dalam budget", i+1)
			}
			assert.Equal(t, fiber.StatusTooManyRequests, codes[tt.budget], "request melewati budget harus 429")
		})
	}
}

func TestRoleRateLimiterRejectionBody(t *testing.T) {
	app := limiterApp(constants.RoleGuest, "")
	_ = drain(t, app, GuestLimitPerMinute)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	assert.NoError(t, jsonDecode(resp.Body, &body))
	assert.Contains(t, body.Message, "Guest request limit exceeded")
}
