package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	dto "sekolahku_backend/internals/features/payment/fees/dto"
	model "sekolahku_backend/internals/features/payment/fees/model"
	service "sekolahku_backend/internals/features/payment/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

// Dashboard ledger table is fixed at 10 rows per page.
const paymentPageSize = 10

type PaymentController struct {
	DB      *gorm.DB
	Gateway *service.PaymentGateway
}

func NewPaymentController(db *gorm.DB, gateway *service.PaymentGateway) *PaymentController {
	return &PaymentController{DB: db, Gateway: gateway}
}

/* ======================= CREATE (MANUAL) ======================= */
// POST /api/a/payments
// Strict path: an unresolvable student is fatal here, unlike listing/stats.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := studentSvc.ResolveStudent(h.DB, req.StudentID)
	if err != nil {
		if errors.Is(err, studentSvc.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	status := req.Status
	if status == "" {
		status = model.PaymentStatusPaid
	}
	receivedBy := helper.GetUserNameFromToken(c)

	row := model.PaymentModel{
		PaymentStudentID: student.StudentID,
		PaymentCourseID:  req.CourseID,
		PaymentAmount:    req.Amount,
		PaymentType:      req.PaymentType,
		PaymentMonth:     req.Month,
		PaymentYear:      req.Year,
		PaymentStatus:    status,
		PaymentReceiptNo: service.NewReceiptNo(),
	}
	if receivedBy != "" {
		row.PaymentReceivedBy = &receivedBy
	}

	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.JsonCreated(c, "Payment recorded", row)
}

/* ======================= LIST ======================= */
// GET /api/a/payments?studentId=&year=&month=&status=&pageNumber=
// Tolerant path: an unresolvable student filter yields an empty page.
// Page size is fixed; a caller-supplied limit is ignored.
func (h *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.FixedPaging(c.QueryInt("pageNumber", c.QueryInt("page", 1)), paymentPageSize)

	base := h.DB.Model(&model.PaymentModel{})

	if ref := c.Query("studentId", c.Query("student_id")); ref != "" {
		student, err := studentSvc.ResolveStudent(h.DB, ref)
		if err != nil {
			if errors.Is(err, studentSvc.ErrStudentNotFound) {
				empty := helper.BuildPaginationFromPage(0, paging.Page, paging.PerPage)
				return helper.JsonList(c, "OK", []dto.PaymentListRow{}, &empty)
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		base = base.Where("payment_student_id = ?", student.StudentID)
	}
	if year := c.QueryInt("year"); year > 0 {
		base = base.Where("payment_year = ?", year)
	}
	if month := c.Query("month"); month != "" {
		base = base.Where("payment_month = ?", month)
	}
	if status := c.Query("status"); status != "" {
		base = base.Where("payment_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []dto.PaymentListRow
	if err := base.
		Select(`payments.payment_id, payments.payment_student_id,
			students.student_code, students.student_name,
			payments.payment_course_id, courses.course_name,
			payments.payment_amount, payments.payment_type,
			payments.payment_month, payments.payment_year,
			payments.payment_status, payments.payment_receipt_no,
			payments.payment_created_at`).
		Joins("JOIN students ON students.student_id = payments.payment_student_id").
		Joins("LEFT JOIN courses ON courses.course_id = payments.payment_course_id").
		Order("payments.payment_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", rows, &pagination)
}

/* ======================= GATEWAY ORDER ======================= */
// POST /api/a/payments/order
func (h *PaymentController) CreateOrder(c *fiber.Ctx) error {
	if h.Gateway == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Payment gateway is not configured")
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	order, err := h.Gateway.CreateOrder(req.Amount, req.Currency, req.Receipt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gateway order creation failed: "+err.Error())
	}
	return helper.JsonOK(c, "Order created", order)
}

/* ======================= GATEWAY VERIFY ======================= */
// POST /api/a/payments/verify
// Security boundary: only a byte-exact signature match persists anything, and
// the persisted record's status/attribution are forced, not caller-supplied.
func (h *PaymentController) Verify(c *fiber.Ctx) error {
	if h.Gateway == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Payment gateway is not configured")
	}

	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !h.Gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid signature")
	}

	student, err := studentSvc.ResolveStudent(h.DB, req.PaymentData.StudentID)
	if err != nil {
		if errors.Is(err, studentSvc.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found during verification")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	receivedBy := model.GatewayReceivedBy
	row := model.PaymentModel{
		PaymentStudentID:  student.StudentID,
		PaymentCourseID:   req.PaymentData.CourseID,
		PaymentAmount:     req.PaymentData.Amount,
		PaymentType:       req.PaymentData.PaymentType,
		PaymentMonth:      req.PaymentData.Month,
		PaymentYear:       req.PaymentData.Year,
		PaymentStatus:     model.PaymentStatusPaid,
		PaymentReceiptNo:  service.NewReceiptNo(),
		PaymentReceivedBy: &receivedBy,
	}

	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.JsonOK(c, "Payment verified successfully", row)
}
