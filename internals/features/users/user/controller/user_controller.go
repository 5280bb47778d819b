package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	userDTO "classroom_backend/internals/features/users/user/dto"
	userModel "classroom_backend/internals/features/users/user/model"
	helper "classroom_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users?role=teacher&search=&page=&limit=
// Dipakai form create class untuk dropdown teacher.
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	base := h.DB.Model(&userModel.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role filter")
		}
		base = base.Where("users.role = ?", role)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		base = base.Where("(users.name ILIKE ? OR users.email ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("GET /users count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get users")
	}

	var rows []userModel.UserModel
	if err := base.Session(&gorm.Session{}).
		Order("users.created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("GET /users error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get users")
	}

	return helper.JsonFlatList(c, userDTO.FromUserModels(rows), helper.BuildPagination(total, paging))
}
