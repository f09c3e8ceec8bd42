package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// Human-facing code (e.g. "STU-2019-0042"), unique and immutable.
	StudentCode string `gorm:"column:student_code;type:varchar(50);not null;uniqueIndex" json:"student_code"`

	StudentName    string  `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentEmail   *string `gorm:"column:student_email;type:varchar(120)"        json:"student_email,omitempty"`
	StudentPhone   *string `gorm:"column:student_phone;type:varchar(30)"         json:"student_phone,omitempty"`
	StudentAddress *string `gorm:"column:student_address;type:text"              json:"student_address,omitempty"`
	StudentGender  *string `gorm:"column:student_gender;type:varchar(10)"        json:"student_gender,omitempty"`

	StudentDOB *datatypes.Date `gorm:"column:student_dob;type:date" json:"student_dob,omitempty"`

	// Linked account at the external identity service, when the student can sign in.
	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid;index" json:"student_user_id,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
