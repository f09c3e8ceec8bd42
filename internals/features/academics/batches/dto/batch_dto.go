package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/academics/batches/model"
)

type CreateBatchRequest struct {
	BatchName     string     `json:"batch_name"      validate:"required,min=2,max=120"`
	BatchCourseID *uuid.UUID `json:"batch_course_id" validate:"omitempty"`
	BatchYear     int        `json:"batch_year"      validate:"required,gte=2000,lte=2100"`

	BatchStartDate *datatypes.Date `json:"batch_start_date" validate:"omitempty"`
	BatchEndDate   *datatypes.Date `json:"batch_end_date"   validate:"omitempty"`

	BatchDays []string `json:"batch_days" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}

func (r CreateBatchRequest) ToModel() *m.BatchModel {
	return &m.BatchModel{
		BatchName:      r.BatchName,
		BatchCourseID:  r.BatchCourseID,
		BatchYear:      r.BatchYear,
		BatchStartDate: r.BatchStartDate,
		BatchEndDate:   r.BatchEndDate,
		BatchDays:      pq.StringArray(r.BatchDays),
	}
}

type UpdateBatchRequest struct {
	BatchName     *string    `json:"batch_name"      validate:"omitempty,min=2,max=120"`
	BatchCourseID *uuid.UUID `json:"batch_course_id" validate:"omitempty"`
	BatchYear     *int       `json:"batch_year"      validate:"omitempty,gte=2000,lte=2100"`

	BatchStartDate *datatypes.Date `json:"batch_start_date" validate:"omitempty"`
	BatchEndDate   *datatypes.Date `json:"batch_end_date"   validate:"omitempty"`

	BatchDays []string `json:"batch_days" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}

func (r UpdateBatchRequest) ApplyTo(mo *m.BatchModel) {
	if r.BatchName != nil {
		mo.BatchName = *r.BatchName
	}
	if r.BatchCourseID != nil {
		mo.BatchCourseID = r.BatchCourseID
	}
	if r.BatchYear != nil {
		mo.BatchYear = *r.BatchYear
	}
	if r.BatchStartDate != nil {
		mo.BatchStartDate = r.BatchStartDate
	}
	if r.BatchEndDate != nil {
		mo.BatchEndDate = r.BatchEndDate
	}
	if r.BatchDays != nil {
		mo.BatchDays = pq.StringArray(r.BatchDays)
	}
}
