package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	subjectDTO "classroom_backend/internals/features/academics/subject/dto"
	subjectModel "classroom_backend/internals/features/academics/subject/model"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/middlewares"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

type whereCond struct {
	query string
	args  []any
}

// buildSubjectFilters menyusun predikat list subjects:
// - search → ILIKE pada subjects.name ATAU subjects.code
// - department → ILIKE pada departments.name
// Predikat berbeda digabung AND; kosong semua → tanpa WHERE.
func buildSubjectFilters(search, department string) []whereCond {
	var conds []whereCond
	if s := strings.TrimSpace(search); s != "" {
		conds = append(conds, whereCond{
			query: "(subjects.name ILIKE ? OR subjects.code ILIKE ?)",
			args:  []any{"%" + s + "%", "%" + s + "%"},
		})
	}
	if d := strings.TrimSpace(department); d != "" {
		conds = append(conds, whereCond{
			query: "departments.name ILIKE ?",
			args:  []any{"%" + d + "%"},
		})
	}
	return conds
}

// GET /api/subjects?search=&department=&page=&limit=
// Envelope datar: {data, limit, total, totalPages}.
func (h *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	conds := buildSubjectFilters(c.Query("search"), c.Query("department"))

	base := h.DB.Model(&subjectModel.SubjectModel{}).
		Joins("LEFT JOIN departments ON departments.id = subjects.department_id")
	for _, w := range conds {
		base = base.Where(w.query, w.args...)
	}

	// count pakai filter yang sama, tanpa limit/offset
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("GET /subjects count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := base.Session(&gorm.Session{}).
		Preload("Department").
		Order("subjects.created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("GET /subjects error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get subjects")
	}

	return helper.JsonFlatList(c, rows, helper.BuildPagination(total, paging))
}

// GET /api/subjects/:id
func (h *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.Preload("Department").First(&m, "subjects.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		log.Printf("GET /subjects/%d error: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get subject")
	}

	return helper.JsonOK(c, m)
}

// POST /api/subjects (admin)
func (h *SubjectController) Create(c *fiber.Ctx) error {
	if middlewares.ResolveRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("subjects"))
	}

	var req subjectDTO.CreateSubjectRequest
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
		case strings.Contains(msg, "duplicate"), strings.Contains(msg, "unique"):
			return helper.JsonError(c, fiber.StatusConflict, "Subject code already in use")
		case strings.Contains(msg, "foreign key"):
			return helper.JsonError(c, fiber.StatusBadRequest, "Department does not exist")
		}
		log.Printf("POST /subjects error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.JsonCreated(c, fiber.Map{"id": m.ID})
}
