package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"classroom_backend/internals/constants"
)

// Budget request per menit per role (sliding window).
const (
	AdminLimitPerMinute   = 20
	TeacherLimitPerMinute = 10
	StudentLimitPerMinute = 10
	GuestLimitPerMinute   = 5
)

func roleLimiter(role string, max int, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			// user login dihitung per user, guest per IP
			if id, ok := c.Locals(LocUserID).(string); ok && id != "" {
				return role + ":" + id
			}
			return role + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": message,
			})
		},
	})
}

// RoleRateLimiter membatasi request sesuai role hasil session middleware:
// admin 20/menit, teacher & student 10/menit, guest 5/menit.
// Harus dipasang SETELAH SessionMiddleware.
func RoleRateLimiter() fiber.Handler {
	limiters := map[string]fiber.Handler{
		constants.RoleAdmin:   roleLimiter(constants.RoleAdmin, AdminLimitPerMinute, "Admin request limit exceeded (20 per minute). Slow down."),
		constants.RoleTeacher: roleLimiter(constants.RoleTeacher, TeacherLimitPerMinute, "User request limit exceeded (10 per minute). Please wait."),
		constants.RoleStudent: roleLimiter(constants.RoleStudent, StudentLimitPerMinute, "User request limit exceeded (10 per minute). Please wait."),
		constants.RoleGuest:   roleLimiter(constants.RoleGuest, GuestLimitPerMinute, "Guest request limit exceeded (5 per minute). Please sign up for higher limits."),
	}

	return func(c *fiber.Ctx) error {
		h, ok := limiters[ResolveRole(c)]
		if !ok {
			h = limiters[constants.RoleGuest]
		}
		return h(c)
	}
}

// LoginRateLimiter: limiter ketat untuk endpoint login (per IP).
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               5,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many login attempts. Try again later.",
			})
		},
	})
}

// RegisterRateLimiter: limiter untuk endpoint register (per IP).
func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               3,
		Expiration:        5 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many sign-up attempts. Try again in a few minutes.",
			})
		},
	})
}
