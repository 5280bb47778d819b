package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"classroom_backend/internals/configs"
	"classroom_backend/internals/constants"
)

// Locals keys yang di-hydrate dari session.
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserName  = "user_name"
	LocUserRole  = "user_role"
	LocUserImage = "user_image"
)

// SessionMiddleware mencoba resolve identitas dari access token
// (Authorization: Bearer xxx, fallback cookie access_token).
// Gagal resolve BUKAN error: request lanjut sebagai guest —
// autentikasi di-enforce per route, bukan di sini.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return c.Next()
		}

		secret := strings.TrimSpace(configs.JWTSecret)
		if secret == "" {
			return c.Next()
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			// token expired / rusak → tetap guest
			return c.Next()
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}

		id := strClaim(claims, "sub")
		if id == "" {
			id = strClaim(claims, "id")
		}
		if id == "" {
			return c.Next()
		}

		role := strClaim(claims, "role")
		if !constants.IsValidRole(role) {
			role = constants.RoleStudent
		}

		c.Locals(LocUserID, id)
		c.Locals(LocUserEmail, strClaim(claims, "email"))
		c.Locals(LocUserName, strClaim(claims, "name"))
		c.Locals(LocUserRole, role)
		if img := strClaim(claims, "image"); img != "" {
			c.Locals(LocUserImage, img)
		}

		return c.Next()
	}
}

// ResolveRole membaca role hasil session; tanpa session → guest.
func ResolveRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok && constants.IsValidRole(v) {
		return v
	}
	return constants.RoleGuest
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
