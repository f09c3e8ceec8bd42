package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// One attendance fact per (student, batch, calendar day). The composite
// unique index is what makes marking an upsert instead of an append.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_batch_date;index" json:"attendance_student_id"`
	AttendanceBatchID   uuid.UUID `gorm:"column:attendance_batch_id;type:uuid;not null;uniqueIndex:uq_attendance_student_batch_date;index"   json:"attendance_batch_id"`

	// Optional; derivable from the batch.
	AttendanceCourseID *uuid.UUID `gorm:"column:attendance_course_id;type:uuid" json:"attendance_course_id,omitempty"`

	AttendanceDate   time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_batch_date" json:"attendance_date"`
	AttendanceStatus string    `gorm:"column:attendance_status;type:varchar(10);not null;default:'Absent'"                    json:"attendance_status"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
