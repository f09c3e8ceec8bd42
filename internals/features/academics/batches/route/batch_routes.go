package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchCtl "sekolahku_backend/internals/features/academics/batches/controller"
)

func BatchAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := batchCtl.NewBatchController(db)

	batches := r.Group("/batches")
	batches.Post("/", ctl.Create)
	batches.Get("/", ctl.List)
	batches.Get("/:id", ctl.GetByID)
	batches.Put("/:id", ctl.Update)
	batches.Delete("/:id", ctl.Delete)
}
