package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "sekolahku_backend/internals/features/payment/fees/controller"
	paymentSvc "sekolahku_backend/internals/features/payment/fees/service"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB, gateway *paymentSvc.PaymentGateway) {
	ctl := paymentCtl.NewPaymentController(db, gateway)
	statsCtl := paymentCtl.NewPaymentStatsController(db)

	payments := r.Group("/payments")
	payments.Post("/", ctl.Create)
	payments.Get("/", ctl.List)
	payments.Post("/order", ctl.CreateOrder)
	payments.Post("/verify", ctl.Verify)
	payments.Get("/stats", statsCtl.Global)
	payments.Get("/stats/:studentId", statsCtl.PerStudent)
}
