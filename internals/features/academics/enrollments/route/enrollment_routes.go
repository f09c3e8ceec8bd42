package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtl "sekolahku_backend/internals/features/academics/enrollments/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollCtl.NewEnrollmentController(db)

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctl.Enroll)
	enrollments.Get("/", ctl.ListByBatch)
	enrollments.Delete("/:id", ctl.Unenroll)
}
