package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/academics/students/model"
)

/* =============== REQUESTS =============== */

// Create
type CreateStudentRequest struct {
	StudentCode    string  `json:"student_code" validate:"required,min=2,max=50"`
	StudentName    string  `json:"student_name" validate:"required,min=2,max=120"`
	StudentEmail   *string `json:"student_email"   validate:"omitempty,email"`
	StudentPhone   *string `json:"student_phone"   validate:"omitempty,max=30"`
	StudentAddress *string `json:"student_address" validate:"omitempty"`
	StudentGender  *string `json:"student_gender"  validate:"omitempty,oneof=Male Female"`

	StudentDOB    *datatypes.Date `json:"student_dob"     validate:"omitempty"`
	StudentUserID *uuid.UUID      `json:"student_user_id" validate:"omitempty"`
}

func (r CreateStudentRequest) ToModel() *m.StudentModel {
	return &m.StudentModel{
		StudentCode:    r.StudentCode,
		StudentName:    r.StudentName,
		StudentEmail:   r.StudentEmail,
		StudentPhone:   r.StudentPhone,
		StudentAddress: r.StudentAddress,
		StudentGender:  r.StudentGender,
		StudentDOB:     r.StudentDOB,
		StudentUserID:  r.StudentUserID,
	}
}

// Update (partial; the code is immutable and cannot be patched)
type UpdateStudentRequest struct {
	StudentName    *string `json:"student_name"    validate:"omitempty,min=2,max=120"`
	StudentEmail   *string `json:"student_email"   validate:"omitempty,email"`
	StudentPhone   *string `json:"student_phone"   validate:"omitempty,max=30"`
	StudentAddress *string `json:"student_address" validate:"omitempty"`
	StudentGender  *string `json:"student_gender"  validate:"omitempty,oneof=Male Female"`

	StudentDOB    *datatypes.Date `json:"student_dob"     validate:"omitempty"`
	StudentUserID *uuid.UUID      `json:"student_user_id" validate:"omitempty"`
}

func (r UpdateStudentRequest) ApplyTo(mo *m.StudentModel) {
	if r.StudentName != nil {
		mo.StudentName = *r.StudentName
	}
	if r.StudentEmail != nil {
		mo.StudentEmail = r.StudentEmail
	}
	if r.StudentPhone != nil {
		mo.StudentPhone = r.StudentPhone
	}
	if r.StudentAddress != nil {
		mo.StudentAddress = r.StudentAddress
	}
	if r.StudentGender != nil {
		mo.StudentGender = r.StudentGender
	}
	if r.StudentDOB != nil {
		mo.StudentDOB = r.StudentDOB
	}
	if r.StudentUserID != nil {
		mo.StudentUserID = r.StudentUserID
	}
}
