package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/batches/dto"
	model "sekolahku_backend/internals/features/academics/batches/model"
	helper "sekolahku_backend/internals/helpers"
)

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

// POST /api/a/batches
func (h *BatchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create batch")
	}
	return helper.JsonCreated(c, "Batch created", m)
}

// GET /api/a/batches
func (h *BatchController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.BatchModel{})
	if year := c.QueryInt("year"); year > 0 {
		base = base.Where("batch_year = ?", year)
	}

	var list []model.BatchModel
	if err := base.
		Order("batch_year DESC, batch_name ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", list)
}

// GET /api/a/batches/:id
func (h *BatchController) GetByID(c *fiber.Ctx) error {
	var row model.BatchModel
	if err := h.DB.Where("batch_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

// PUT /api/a/batches/:id (partial)
func (h *BatchController) Update(c *fiber.Ctx) error {
	var row model.BatchModel
	if err := h.DB.Where("batch_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update batch")
	}
	return helper.JsonUpdated(c, "Batch updated", row)
}

// DELETE /api/a/batches/:id
func (h *BatchController) Delete(c *fiber.Ctx) error {
	res := h.DB.Where("batch_id = ?", c.Params("id")).Delete(&model.BatchModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Batch not found")
	}
	return helper.JsonDeleted(c, "Batch removed", fiber.Map{"batch_id": c.Params("id")})
}
