package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/students/dto"
	model "sekolahku_backend/internals/features/academics/students/model"
	service "sekolahku_backend/internals/features/academics/students/service"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Student code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", m)
}

/* ======================== LIST ======================== */
// GET /api/a/students?page=&per_page=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&model.StudentModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentModel
	if err := h.DB.
		Order("student_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", list, &pagination)
}

/* ====================== MY PROFILE ====================== */
// GET /api/u/students/profile
func (h *StudentController) Profile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	row, err := service.ResolveStudentByUserID(h.DB, userID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ====================== GET BY REF ====================== */
// GET /api/u/students/:id (internal id or student code)
func (h *StudentController) GetByRef(c *fiber.Ctx) error {
	ref := c.Params("id")
	row, err := service.ResolveStudent(h.DB, ref)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================= UPDATE ======================= */
// PUT /api/a/students/:id (partial)
func (h *StudentController) Update(c *fiber.Ctx) error {
	ref := c.Params("id")
	row, err := service.ResolveStudent(h.DB, ref)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyTo(row)
	if err := h.DB.Save(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", row)
}

/* ======================= DELETE ======================= */
// DELETE /api/a/students/:id
// Removes the record only; attendance and payment history stay behind.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	ref := c.Params("id")
	row, err := service.ResolveStudent(h.DB, ref)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Delete(&model.StudentModel{}, "student_id = ?", row.StudentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Student removed", fiber.Map{"student_id": row.StudentID})
}
