package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "sekolahku_backend/internals/features/academics/students/controller"
)

// StudentAdminRoutes: full CRUD, admin group.
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}

// StudentUserRoutes: routes for any authenticated caller.
func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/profile", ctl.Profile)
	students.Get("/:id", ctl.GetByRef)
}
