package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	classDTO "classroom_backend/internals/features/academics/classes/dto"
	classModel "classroom_backend/internals/features/academics/classes/model"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/middlewares"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

type whereCond struct {
	query string
	args  []any
}

// buildClassFilters menyusun predikat list classes:
// - search → ILIKE pada classes.name ATAU classes.invite_code
// - subject → ILIKE pada subjects.name
// - teacher → ILIKE pada users.name
// Predikat berbeda digabung AND; kosong semua → tanpa WHERE.
func buildClassFilters(search, subject, teacher string) []whereCond {
	var conds []whereCond
	if s := strings.TrimSpace(search); s != "" {
		conds = append(conds, whereCond{
			query: "(classes.name ILIKE ? OR classes.invite_code ILIKE ?)",
			args:  []any{"%" + s + "%", "%" + s + "%"},
		})
	}
	if s := strings.TrimSpace(subject); s != "" {
		conds = append(conds, whereCond{
			query: "subjects.name ILIKE ?",
			args:  []any{"%" + s + "%"},
		})
	}
	if t := strings.TrimSpace(teacher); t != "" {
		conds = append(conds, whereCond{
			query: "users.name ILIKE ?",
			args:  []any{"%" + t + "%"},
		})
	}
	return conds
}

// GET /api/classes?search=&subject=&teacher=&page=&limit=
// Envelope: {data, pagination: {page, limit, total, totalPages}}.
func (h *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	conds := buildClassFilters(c.Query("search"), c.Query("subject"), c.Query("teacher"))

	base := h.DB.Model(&classModel.ClassModel{}).
		Joins("LEFT JOIN subjects ON subjects.id = classes.subject_id").
		Joins("LEFT JOIN users ON users.id = classes.teacher_id")
	for _, w := range conds {
		base = base.Where(w.query, w.args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("GET /classes count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get classes")
	}

	var rows []classModel.ClassModel
	if err := base.Session(&gorm.Session{}).
		Preload("Subject").
		Preload("Teacher").
		Order("classes.created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("GET /classes error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get classes")
	}

	return helper.JsonList(c, rows, helper.BuildPagination(total, paging))
}

// GET /api/classes/:id
// 400 kalau id bukan angka, 404 kalau tidak ada.
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var m classModel.ClassModel
	if err := h.DB.
		Preload("Subject.Department").
		Preload("Teacher").
		First(&m, "classes.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("GET /classes/%d error: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get class")
	}

	return helper.JsonOK(c, classDTO.FromClassModel(m))
}

// POST /api/classes (teacher/admin)
// invite code dibuat server (uuid) dan schedules diisi []; kode kiriman
// client diabaikan karena tidak pernah ada di DTO.
func (h *ClassController) Create(c *fiber.Ctx) error {
	role := middlewares.ResolveRole(c)
	if role != constants.RoleAdmin && role != constants.RoleTeacher {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTeacher("classes"))
	}

	var req classDTO.CreateClassRequest
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
		switch {
		case strings.Contains(msg, "classes_invite_code"):
			// tabrakan uuid nyaris mustahil; biarkan client coba ulang
			return helper.JsonError(c, fiber.StatusConflict, "Invite code collision, please retry")
		case strings.Contains(msg, "foreign key"):
			return helper.JsonError(c, fiber.StatusBadRequest, "Subject or teacher does not exist")
		}
		log.Printf("POST /classes error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, fiber.Map{"id": m.ID})
}
