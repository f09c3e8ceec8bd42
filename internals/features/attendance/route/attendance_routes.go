package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "sekolahku_backend/internals/features/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/", ctl.Mark)
	attendance.Get("/report", ctl.Report)
}

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/my-attendance", ctl.MyAttendance)
}
