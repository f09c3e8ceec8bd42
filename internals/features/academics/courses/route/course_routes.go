package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtl "sekolahku_backend/internals/features/academics/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Post("/", ctl.Create)
	courses.Get("/", ctl.List)
	courses.Get("/:id", ctl.GetByID)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Delete)
}
