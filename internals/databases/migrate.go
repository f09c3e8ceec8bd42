package database

import (
	"log"

	"gorm.io/gorm"

	batchModel "sekolahku_backend/internals/features/academics/batches/model"
	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	enrollModel "sekolahku_backend/internals/features/academics/enrollments/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	attendanceModel "sekolahku_backend/internals/features/attendance/model"
	paymentModel "sekolahku_backend/internals/features/payment/fees/model"
)

// AutoMigrate creates/updates all tables, including the unique indexes the
// upsert and receipt contracts rely on.
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] running migrations...")
	return db.AutoMigrate(
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&batchModel.BatchModel{},
		&enrollModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&paymentModel.PaymentModel{},
	)
}
