package dto

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/academics/enrollments/model"
)

type EnrollRequest struct {
	StudentID string    `json:"student_id" validate:"required"` // code or internal id
	BatchID   uuid.UUID `json:"batch_id"   validate:"required"`
}

func NewEnrollment(studentID, batchID uuid.UUID) *m.EnrollmentModel {
	return &m.EnrollmentModel{
		EnrollmentStudentID: studentID,
		EnrollmentBatchID:   batchID,
	}
}
