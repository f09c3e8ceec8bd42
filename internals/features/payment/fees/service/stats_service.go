package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/payment/fees/model"
)

type GlobalStats struct {
	TotalCollected   float64 `json:"total_collected"`
	TotalDueRecorded float64 `json:"total_due_recorded"`
	Count            int64   `json:"count"`
}

type StudentStats struct {
	TotalPaid float64 `json:"total_paid"`
	TotalDue  float64 `json:"total_due"`
	Count     int64   `json:"count"`
}

// ComputeGlobalStats rolls the whole ledger up into collected/due totals.
// Zero records means all-zero, not an error.
func ComputeGlobalStats(db *gorm.DB) (GlobalStats, error) {
	var stats GlobalStats
	err := db.Model(&model.PaymentModel{}).
		Select(`
			COALESCE(SUM(CASE WHEN payment_status = 'Paid' THEN payment_amount ELSE 0 END), 0) AS total_collected,
			COALESCE(SUM(CASE WHEN payment_status = 'Due'  THEN payment_amount ELSE 0 END), 0) AS total_due_recorded,
			COUNT(*) AS count`).
		Scan(&stats).Error
	return stats, err
}

// ComputeStudentStats is the same rollup scoped to one student.
func ComputeStudentStats(db *gorm.DB, studentID uuid.UUID) (StudentStats, error) {
	var stats StudentStats
	err := db.Model(&model.PaymentModel{}).
		Select(`
			COALESCE(SUM(CASE WHEN payment_status = 'Paid' THEN payment_amount ELSE 0 END), 0) AS total_paid,
			COALESCE(SUM(CASE WHEN payment_status = 'Due'  THEN payment_amount ELSE 0 END), 0) AS total_due,
			COUNT(*) AS count`).
		Where("payment_student_id = ?", studentID).
		Scan(&stats).Error
	return stats, err
}
