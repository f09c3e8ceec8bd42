package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =============== REQUESTS =============== */

// Manual ledger entry. StudentID may be the code or the internal id.
type CreatePaymentRequest struct {
	StudentID   string     `json:"student_id"   validate:"required"`
	CourseID    *uuid.UUID `json:"course_id"    validate:"omitempty"`
	Amount      float64    `json:"amount"       validate:"required"`
	PaymentType string     `json:"payment_type" validate:"required,max=60"`
	Month       *string    `json:"month"        validate:"omitempty,max=12"`
	Year        *int       `json:"year"         validate:"omitempty,gte=2000,lte=2100"`
	Status      string     `json:"status"       validate:"omitempty,oneof=Paid Due"`
}

type CreateOrderRequest struct {
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	Receipt  string  `json:"receipt"  validate:"omitempty,max=64"`
}

// Gateway confirmation callback payload. The embedded PaymentData carries the
// ledger fields; its status/attribution are ignored on this path.
type VerifyPaymentRequest struct {
	GatewayOrderID   string               `json:"gateway_order_id"   validate:"required"`
	GatewayPaymentID string               `json:"gateway_payment_id" validate:"required"`
	GatewaySignature string               `json:"gateway_signature"  validate:"required"`
	PaymentData      CreatePaymentRequest `json:"payment_data"       validate:"required"`
}

/* =============== RESPONSES =============== */

// List row with the joined student identity the dashboard table shows.
type PaymentListRow struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentStudentID uuid.UUID  `json:"payment_student_id"`
	StudentCode      string     `json:"student_code"`
	StudentName      string     `json:"student_name"`
	PaymentCourseID  *uuid.UUID `json:"payment_course_id,omitempty"`
	CourseName       *string    `json:"course_name,omitempty"`
	PaymentAmount    float64    `json:"payment_amount"`
	PaymentType      string     `json:"payment_type"`
	PaymentMonth     *string    `json:"payment_month,omitempty"`
	PaymentYear      *int       `json:"payment_year,omitempty"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentReceiptNo string     `json:"payment_receipt_no"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
}
