package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeCtl "sekolahku_backend/internals/features/home/controller"
)

func HomeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeCtl.NewDashboardController(db)

	r.Get("/stats", ctl.Stats)
}
