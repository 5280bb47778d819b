// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"classroom_backend/internals/configs"
	authModel "classroom_backend/internals/features/users/auth/model"
	userModel "classroom_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// computeRefreshHash: yang disimpan di DB hash-nya, bukan token mentah.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}
	if u.Image != nil {
		claims["image"] = *u.Image
	}
	return claims
}

func buildRefreshClaims(userID string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

// issueTokens membuat pasangan access+refresh, menyimpan hash refresh,
// dan memasang cookie session.
func issueTokens(db *gorm.DB, c *fiber.Ctx, u userModel.UserModel) (access string, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	rt := authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTL),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setSessionCookies(c, access, refresh, now)
	return access, refresh, nil
}

func setSessionCookies(c *fiber.Ctx, access, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(accessTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearSessionCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/api/auth"})
}
