package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	service "sekolahku_backend/internals/features/payment/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

type PaymentStatsController struct {
	DB *gorm.DB
}

func NewPaymentStatsController(db *gorm.DB) *PaymentStatsController {
	return &PaymentStatsController{DB: db}
}

// GET /api/a/payments/stats
func (h *PaymentStatsController) Global(c *fiber.Ctx) error {
	stats, err := service.ComputeGlobalStats(h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", stats)
}

// GET /api/a/payments/stats/:studentId
// Tolerant: an unresolvable reference answers zeros, not an error.
func (h *PaymentStatsController) PerStudent(c *fiber.Ctx) error {
	student, err := studentSvc.ResolveStudent(h.DB, c.Params("studentId"))
	if err != nil {
		if errors.Is(err, studentSvc.ErrStudentNotFound) {
			return helper.JsonOK(c, "OK", service.StudentStats{})
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	stats, err := service.ComputeStudentStats(h.DB, student.StudentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", stats)
}
