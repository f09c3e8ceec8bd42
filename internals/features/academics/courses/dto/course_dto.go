package dto

import (
	m "sekolahku_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseName        string  `json:"course_name" validate:"required,min=2,max=120"`
	CourseFee         float64 `json:"course_fee"  validate:"omitempty,gte=0"`
	CourseDuration    *string `json:"course_duration"    validate:"omitempty,max=60"`
	CourseDescription *string `json:"course_description" validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() *m.CourseModel {
	return &m.CourseModel{
		CourseName:        r.CourseName,
		CourseFee:         r.CourseFee,
		CourseDuration:    r.CourseDuration,
		CourseDescription: r.CourseDescription,
	}
}

type UpdateCourseRequest struct {
	CourseName        *string  `json:"course_name" validate:"omitempty,min=2,max=120"`
	CourseFee         *float64 `json:"course_fee"  validate:"omitempty,gte=0"`
	CourseDuration    *string  `json:"course_duration"    validate:"omitempty,max=60"`
	CourseDescription *string  `json:"course_description" validate:"omitempty"`
}

func (r UpdateCourseRequest) ApplyTo(mo *m.CourseModel) {
	if r.CourseName != nil {
		mo.CourseName = *r.CourseName
	}
	if r.CourseFee != nil {
		mo.CourseFee = *r.CourseFee
	}
	if r.CourseDuration != nil {
		mo.CourseDuration = r.CourseDuration
	}
	if r.CourseDescription != nil {
		mo.CourseDescription = r.CourseDescription
	}
}
