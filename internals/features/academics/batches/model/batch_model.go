package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// A batch is a named cohort tied to a course and a year; it is the grouping
// key for attendance.
type BatchModel struct {
	BatchID uuid.UUID `gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_id"`

	BatchName     string     `gorm:"column:batch_name;type:varchar(120);not null" json:"batch_name"`
	BatchCourseID *uuid.UUID `gorm:"column:batch_course_id;type:uuid;index"       json:"batch_course_id,omitempty"`
	BatchYear     int        `gorm:"column:batch_year;type:smallint;not null"     json:"batch_year"`

	BatchStartDate *datatypes.Date `gorm:"column:batch_start_date;type:date" json:"batch_start_date,omitempty"`
	BatchEndDate   *datatypes.Date `gorm:"column:batch_end_date;type:date"   json:"batch_end_date,omitempty"`

	// Weekdays the batch meets, e.g. {Mon,Wed,Fri}. Informational only;
	// attendance is keyed by actual dates, not the schedule.
	BatchDays pq.StringArray `gorm:"column:batch_days;type:text[]" json:"batch_days,omitempty"`

	BatchCreatedAt time.Time  `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt *time.Time `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }
