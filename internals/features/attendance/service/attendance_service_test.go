package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/attendance/model"
)

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2019, 2, 14, 13, 45, 59, 123, time.UTC)
	got := NormalizeDate(in)

	assert.Equal(t, time.Date(2019, 2, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		lastDay int
	}{
		{name: "february leap year", month: 2, year: 2024, lastDay: 29},
		{name: "february non-leap", month: 2, year: 2023, lastDay: 28},
		{name: "thirty day month", month: 4, year: 2019, lastDay: 30},
		{name: "thirty-one day month", month: 12, year: 2019, lastDay: 31},
		{name: "january", month: 1, year: 2020, lastDay: 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.month, tt.year)

			assert.Equal(t, time.Date(tt.year, time.Month(tt.month), 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, tt.lastDay, end.Day())
			assert.Equal(t, time.Month(tt.month), end.Month())
			assert.Equal(t, tt.year, end.Year())
		})
	}
}

func TestBuildReportRows(t *testing.T) {
	alice := ReportStudent{StudentID: uuid.New(), StudentCode: "STU-001", StudentName: "Alice"}
	bob := ReportStudent{StudentID: uuid.New(), StudentCode: "STU-002", StudentName: "Bob"}

	day := func(d int) time.Time {
		return time.Date(2019, 2, d, 0, 0, 0, 0, time.UTC)
	}
	rec := func(s ReportStudent, d int, status string) model.AttendanceModel {
		return model.AttendanceModel{
			AttendanceStudentID: s.StudentID,
			AttendanceDate:      day(d),
			AttendanceStatus:    status,
		}
	}

	records := []model.AttendanceModel{
		rec(alice, 1, model.StatusPresent),
		rec(alice, 2, model.StatusAbsent),
		rec(alice, 14, model.StatusPresent),
		rec(bob, 1, model.StatusAbsent),
	}

	rows := BuildReportRows([]ReportStudent{alice, bob}, records)
	require.Len(t, rows, 2)

	assert.Equal(t, "STU-001", rows[0].StudentCode)
	assert.Equal(t, map[int]string{1: "Present", 2: "Absent", 14: "Present"}, rows[0].Attendance)
	assert.Equal(t, 2, rows[0].TotalPresent)
	assert.Equal(t, 1, rows[0].TotalAbsent)

	assert.Equal(t, "STU-002", rows[1].StudentCode)
	assert.Equal(t, map[int]string{1: "Absent"}, rows[1].Attendance)
	assert.Equal(t, 0, rows[1].TotalPresent)
	assert.Equal(t, 1, rows[1].TotalAbsent)

	// Days without a record stay out of the map ("no data" != "Absent").
	_, ok := rows[0].Attendance[3]
	assert.False(t, ok)
}

func TestBuildReportRowsNoRecords(t *testing.T) {
	student := ReportStudent{StudentID: uuid.New(), StudentCode: "STU-003", StudentName: "Carol"}

	rows := BuildReportRows([]ReportStudent{student}, nil)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Attendance)
	assert.Zero(t, rows[0].TotalPresent)
	assert.Zero(t, rows[0].TotalAbsent)
}

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		classes int
		want    float64
	}{
		{name: "zero classes", present: 0, classes: 0, want: 0},
		{name: "all present", present: 10, classes: 10, want: 100},
		{name: "one decimal rounding", present: 2, classes: 3, want: 66.7},
		{name: "rounds up", present: 1, classes: 7, want: 14.3},
		{name: "all absent", present: 0, classes: 5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePercentage(tt.present, tt.classes))
		})
	}
}

func TestBuildPersonalStats(t *testing.T) {
	records := []model.AttendanceModel{
		{AttendanceStatus: model.StatusPresent},
		{AttendanceStatus: model.StatusPresent},
		{AttendanceStatus: model.StatusAbsent},
	}

	stats := BuildPersonalStats(records)
	assert.Equal(t, 3, stats.TotalClasses)
	assert.Equal(t, 2, stats.TotalPresent)
	assert.Equal(t, 1, stats.TotalAbsent)
	assert.Equal(t, 66.7, stats.Percentage)
}

func TestBuildPersonalStatsEmpty(t *testing.T) {
	stats := BuildPersonalStats(nil)
	assert.Zero(t, stats.TotalClasses)
	assert.Equal(t, float64(0), stats.Percentage)
}

func TestMarkAttendanceOutcomes(t *testing.T) {
	batchID := uuid.New()
	courseID := uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	failing := students[1]

	records := []MarkRecord{
		{StudentID: students[0], Status: model.StatusPresent},
		{StudentID: failing, Status: model.StatusAbsent},
		{StudentID: students[2], Status: model.StatusPresent},
	}

	var mu sync.Mutex
	var applied []model.AttendanceModel
	upsert := func(row model.AttendanceModel) error {
		mu.Lock()
		applied = append(applied, row)
		mu.Unlock()
		if row.AttendanceStudentID == failing {
			return errors.New("deadlock detected")
		}
		return nil
	}

	date := time.Date(2019, 6, 3, 17, 30, 0, 0, time.UTC)
	result := markAttendance(upsert, batchID, &courseID, date, records)

	assert.Equal(t, 2, result.Marked)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Outcomes, 3)

	// Outcomes keep request order regardless of goroutine scheduling.
	for i, rec := range records {
		assert.Equal(t, rec.StudentID, result.Outcomes[i].StudentID)
		assert.Equal(t, rec.Status, result.Outcomes[i].Status)
	}
	assert.True(t, result.Outcomes[0].OK)
	assert.False(t, result.Outcomes[1].OK)
	assert.Equal(t, "deadlock detected", result.Outcomes[1].Error)
	assert.Empty(t, result.Outcomes[0].Error)
	assert.True(t, result.Outcomes[2].OK)

	// Every record was attempted; one failure never blocks the rest.
	require.Len(t, applied, 3)
	for _, row := range applied {
		assert.Equal(t, batchID, row.AttendanceBatchID)
		require.NotNil(t, row.AttendanceCourseID)
		assert.Equal(t, courseID, *row.AttendanceCourseID)
		assert.Equal(t, time.Date(2019, 6, 3, 0, 0, 0, 0, time.UTC), row.AttendanceDate)
	}
}

func TestMarkAttendanceAllApplied(t *testing.T) {
	var count int64
	upsert := func(model.AttendanceModel) error {
		atomic.AddInt64(&count, 1)
		return nil
	}

	records := make([]MarkRecord, 40)
	for i := range records {
		records[i] = MarkRecord{StudentID: uuid.New(), Status: model.StatusPresent}
	}

	result := markAttendance(upsert, uuid.New(), nil, time.Now(), records)

	assert.Equal(t, 40, result.Marked)
	assert.Equal(t, 0, result.Failed)
	assert.EqualValues(t, 40, atomic.LoadInt64(&count))
}

func TestMarkAttendanceNoRecords(t *testing.T) {
	result := markAttendance(func(model.AttendanceModel) error {
		t.Error("upsert must not run for an empty record set")
		return nil
	}, uuid.New(), nil, time.Now(), nil)

	assert.Equal(t, 0, result.Marked)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Outcomes)
}
