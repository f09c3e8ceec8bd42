package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership of a student in a batch. The attendance report enumerates batch
// members through this table instead of the whole student population.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_batch" json:"enrollment_student_id"`
	EnrollmentBatchID   uuid.UUID `gorm:"column:enrollment_batch_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_batch;index" json:"enrollment_batch_id"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
