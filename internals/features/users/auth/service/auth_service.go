package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classroom_backend/internals/configs"
	authDTO "classroom_backend/internals/features/users/auth/dto"
	authHelper "classroom_backend/internals/features/users/auth/helper"
	userDTO "classroom_backend/internals/features/users/user/dto"
	userModel "classroom_backend/internals/features/users/user/model"
	helpers "classroom_backend/internals/helpers"
	"classroom_backend/internals/middlewares"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

// Register: sign-up email+password. Aturan elevasi admin jalan
// sebelum ada baris user dibuat.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role, err := ResolveSignupRole(req.Email, req.Role, configs.AdminEmail)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		ID:            uuid.NewString(),
		Email:         req.Email,
		Name:          req.Name,
		Role:          role,
		PasswordHash:  hash,
		Image:         req.Image,
		ImageCldPubID: req.ImageCldPubID,
	}
	if err := db.Create(&user).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("[auth] register error: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}

	return helpers.JsonCreated(c, fiber.Map{
		"user":  userDTO.FromUserModel(user),
		"token": access,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[auth] login lookup error: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if user.PasswordHash == "" || !authHelper.CheckPassword(user.PasswordHash, req.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}

	return helpers.JsonOK(c, fiber.Map{
		"user":  userDTO.FromUserModel(user),
		"token": access,
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle menerima ID token Google dari frontend.
// Akun baru tetap melewati aturan elevasi admin yang sama.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	if strings.TrimSpace(configs.GoogleClientID) == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	var user userModel.UserModel
	err = db.First(&user, "google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		role, roleErr := ResolveSignupRole(claimSet.Email, req.Role, configs.AdminEmail)
		if roleErr != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, roleErr.Error())
		}
		googleID := claimSet.Sub
		user = userModel.UserModel{
			ID:       uuid.NewString(),
			Email:    claimSet.Email,
			Name:     claimSet.Name,
			Role:     role,
			GoogleID: &googleID,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[auth] google create error: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
		}
	case err != nil:
		log.Printf("[auth] google lookup error: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	default:
		// akun lama tanpa google_id → link sekali
		if user.GoogleID == nil {
			gid := claimSet.Sub
			if err := db.Model(&user).Update("google_id", gid).Error; err == nil {
				user.GoogleID = &gid
			}
		}
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}

	return helpers.JsonOK(c, fiber.Map{
		"user":  userDTO.FromUserModel(user),
		"token": access,
	})
}

/* ==========================
   REFRESH / LOGOUT / ME
========================== */

// RefreshToken merotasi refresh token dari cookie.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	if _, err := uuid.Parse(sub); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// hash refresh harus dikenal di DB
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = ?)`, h).Scan(&exists).Error; err != nil {
		log.Printf("[auth] refresh lookup error: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token unknown")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", sub).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// ROTATE: hapus hash lama sebelum terbitkan yang baru
	if err := db.Exec(`DELETE FROM refresh_tokens WHERE token = ?`, h).Error; err != nil {
		log.Printf("[auth] refresh rotate delete error: %v", err)
	}

	access, _, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}

	return helpers.JsonOK(c, fiber.Map{"token": access})
}

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			h := computeRefreshHash(refreshCookie, refreshSecret)
			_ = db.Exec(`DELETE FROM refresh_tokens WHERE token = ?`, h).Error
		}
	}
	clearSessionCookies(c)
	return helpers.JsonOK(c, fiber.Map{"message": "Logged out"})
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	id, ok := c.Locals(middlewares.LocUserID).(string)
	if !ok || id == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[auth] me lookup error: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to get user")
	}

	return helpers.JsonOK(c, userDTO.FromUserModel(user))
}
