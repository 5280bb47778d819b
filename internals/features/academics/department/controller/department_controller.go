package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	deptDTO "classroom_backend/internals/features/academics/department/dto"
	deptModel "classroom_backend/internals/features/academics/department/model"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/middlewares"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validate: validator.New()}
}

type whereCond struct {
	query string
	args  []any
}

// buildDepartmentFilters menyusun predikat list. Kosong semua → tanpa WHERE.
func buildDepartmentFilters(search string) []whereCond {
	var conds []whereCond
	if s := strings.TrimSpace(search); s != "" {
		conds = append(conds, whereCond{
			query: "(departments.name ILIKE ? OR departments.code ILIKE ?)",
			args:  []any{"%" + s + "%", "%" + s + "%"},
		})
	}
	return conds
}

// GET /api/departments?search=&page=&limit=
func (h *DepartmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	conds := buildDepartmentFilters(c.Query("search"))

	base := h.DB.Model(&deptModel.DepartmentModel{})
	for _, w := range conds {
		base = base.Where(w.query, w.args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("GET /departments count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get departments")
	}

	var rows []deptModel.DepartmentModel
	if err := base.Session(&gorm.Session{}).
		Order("departments.created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("GET /departments error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get departments")
	}

	return helper.JsonFlatList(c, rows, helper.BuildPagination(total, paging))
}

// POST /api/departments (admin)
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	if middlewares.ResolveRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("departments"))
	}

	var req deptDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Department code already in use")
		}
		log.Printf("POST /departments error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}

	return helper.JsonCreated(c, fiber.Map{"id": m.ID})
}
