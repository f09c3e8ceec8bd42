package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPaid = "Paid"
	PaymentStatusDue  = "Due"

	// Attribution forced onto gateway-confirmed records.
	GatewayReceivedBy = "Online (Gateway)"
)

// Append-only fee ledger. Corrections are new records, never edits; the
// receipt number is assigned once and unique forever.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID uuid.UUID  `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentCourseID  *uuid.UUID `gorm:"column:payment_course_id;type:uuid"                 json:"payment_course_id,omitempty"`

	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`

	// Free-text category, e.g. "Monthly Fee", "Admission Fee", "Exam Fee".
	PaymentType string `gorm:"column:payment_type;type:varchar(60);not null" json:"payment_type"`

	PaymentMonth *string `gorm:"column:payment_month;type:varchar(12)"  json:"payment_month,omitempty"`
	PaymentYear  *int    `gorm:"column:payment_year;type:smallint"      json:"payment_year,omitempty"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(10);not null;default:'Paid'" json:"payment_status"`

	PaymentReceiptNo  string  `gorm:"column:payment_receipt_no;type:varchar(64);not null;uniqueIndex" json:"payment_receipt_no"`
	PaymentReceivedBy *string `gorm:"column:payment_received_by;type:varchar(120)"                    json:"payment_received_by,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime;index" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
