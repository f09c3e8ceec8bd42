package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	batchModel "sekolahku_backend/internals/features/academics/batches/model"
	dto "sekolahku_backend/internals/features/academics/enrollments/dto"
	model "sekolahku_backend/internals/features/academics/enrollments/model"
	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/* ======================= ENROLL ======================= */
// POST /api/a/enrollments
// Idempotent: enrolling an already-enrolled student is a no-op.
func (h *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := studentSvc.ResolveStudent(h.DB, req.StudentID)
	if err != nil {
		if errors.Is(err, studentSvc.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var batch batchModel.BatchModel
	if err := h.DB.Where("batch_id = ?", req.BatchID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	row := dto.NewEnrollment(student.StudentID, batch.BatchID)
	res := h.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonOK(c, "Student already enrolled", row)
	}
	return helper.JsonCreated(c, "Student enrolled", row)
}

/* ====================== LIST BY BATCH ====================== */
// GET /api/a/enrollments?batch_id=
func (h *EnrollmentController) ListByBatch(c *fiber.Ctx) error {
	batchID := c.Query("batch_id")
	if batchID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide batch_id")
	}

	var list []model.EnrollmentModel
	if err := h.DB.
		Where("enrollment_batch_id = ?", batchID).
		Order("enrollment_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

/* ======================= UNENROLL ======================= */
// DELETE /api/a/enrollments/:id
func (h *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	res := h.DB.Where("enrollment_id = ?", c.Params("id")).Delete(&model.EnrollmentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c, "Enrollment removed", fiber.Map{"enrollment_id": c.Params("id")})
}
