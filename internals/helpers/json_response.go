// file: internals/helpers/json_response.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging membaca ?page= & ?limit= dan normalisasi.
// Input non-numerik / <= 0 jatuh ke default; limit dibatasi maxLimit.
// Limit tidak pernah 0 → BuildPagination aman dari pembagian nol.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit))))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

/* ===============================
   Pagination block
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// BuildPagination menghitung totalPages = ceil(total/limit).
func BuildPagination(total int64, p Paging) Pagination {
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	return Pagination{
		Page:       p.Page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}
}

/* ===============================
   JSON responses
=================================*/

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

// JsonList: list dengan blok pagination (classes dsb)
func JsonList(c *fiber.Ctx, data any, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"pagination": pagination,
	})
}

// JsonFlatList: envelope datar (subjects) — limit/total/totalPages di root.
func JsonFlatList(c *fiber.Ctx, data any, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"limit":      pagination.Limit,
		"total":      pagination.Total,
		"totalPages": pagination.TotalPages,
	})
}

// JsonError: error generic; frontend provider membaca field "message".
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}
