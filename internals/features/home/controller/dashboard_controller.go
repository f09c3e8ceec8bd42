package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "sekolahku_backend/internals/features/academics/batches/model"
	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	enrollModel "sekolahku_backend/internals/features/academics/enrollments/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/a/stats: headline counters for the admin dashboard.
func (h *DashboardController) Stats(c *fiber.Ctx) error {
	var totalStudents, totalCourses, totalBatches, totalEnrollments int64

	if err := h.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Model(&courseModel.CourseModel{}).Count(&totalCourses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Model(&batchModel.BatchModel{}).Count(&totalBatches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Model(&enrollModel.EnrollmentModel{}).Count(&totalEnrollments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_students":    totalStudents,
		"total_courses":     totalCourses,
		"total_batches":     totalBatches,
		"total_enrollments": totalEnrollments,
	})
}
