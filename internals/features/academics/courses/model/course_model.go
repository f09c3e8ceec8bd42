package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseName        string  `gorm:"column:course_name;type:varchar(120);not null;uniqueIndex" json:"course_name"`
	CourseFee         float64 `gorm:"column:course_fee;type:numeric(12,2);not null;default:0"   json:"course_fee"`
	CourseDuration    *string `gorm:"column:course_duration;type:varchar(60)"                   json:"course_duration,omitempty"`
	CourseDescription *string `gorm:"column:course_description;type:text"                       json:"course_description,omitempty"`

	CourseCreatedAt time.Time  `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
