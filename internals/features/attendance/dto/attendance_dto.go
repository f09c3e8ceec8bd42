package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MarkEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=Present Absent"`
}

type MarkAttendanceRequest struct {
	BatchID        uuid.UUID   `json:"batch_id" validate:"required"`
	CourseID       *uuid.UUID  `json:"course_id" validate:"omitempty"`
	Date           string      `json:"date" validate:"required"`
	AttendanceData []MarkEntry `json:"attendance_data" validate:"required,min=1,dive"`
}

// ParseDate accepts a plain date or an RFC3339 timestamp; the time-of-day is
// discarded later either way.
func (r MarkAttendanceRequest) ParseDate() (time.Time, error) {
	s := strings.TrimSpace(r.Date)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC3339")
}
