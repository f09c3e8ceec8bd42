package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	batchRoute "sekolahku_backend/internals/features/academics/batches/route"
	courseRoute "sekolahku_backend/internals/features/academics/courses/route"
	enrollRoute "sekolahku_backend/internals/features/academics/enrollments/route"
	studentRoute "sekolahku_backend/internals/features/academics/students/route"
	attendanceRoute "sekolahku_backend/internals/features/attendance/route"
	homeRoute "sekolahku_backend/internals/features/home/route"
	paymentRoute "sekolahku_backend/internals/features/payment/fees/route"
	paymentSvc "sekolahku_backend/internals/features/payment/fees/service"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, gateway *paymentSvc.PaymentGateway) {
	// Authenticated group: any signed-in caller (admin or student).
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)
	studentRoute.StudentUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)

	// Admin group: role guard on top of auth. Separate prefix so the guard
	// never leaks onto user routes.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("school administration"), constants.AdminOnly...),
	)
	studentRoute.StudentAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	batchRoute.BatchAdminRoutes(admin, db)
	enrollRoute.EnrollmentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db, gateway)
	homeRoute.HomeAdminRoutes(admin, db)
}
