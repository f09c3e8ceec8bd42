package service

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "sekolahku_backend/internals/features/attendance/model"
)

/* =========================
   Calendar helpers
========================= */

// NormalizeDate drops the time-of-day: attendance is a per-calendar-day fact.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the inclusive [first day, last day] of a calendar month.
// The end is computed as day 0 of the following month so month-length
// variation (incl. leap years) comes out right.
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

/* =========================
   Mark (concurrent upsert fan-out)
========================= */

type MarkRecord struct {
	StudentID uuid.UUID
	Status    string
}

type MarkOutcome struct {
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

type MarkResult struct {
	Marked   int           `json:"marked"`
	Failed   int           `json:"failed"`
	Outcomes []MarkOutcome `json:"outcomes"`
}

// upsertFn applies one normalized attendance row.
type upsertFn func(model.AttendanceModel) error

// MarkAttendance upserts one status per (student, batch, day). All records
// are issued concurrently and the call waits for every one; failures are
// reported per record, already-applied upserts are not rolled back. Two
// concurrent marks of the same triple race as last-write-wins, which is the
// wanted behavior (attendance correction).
func MarkAttendance(db *gorm.DB, batchID uuid.UUID, courseID *uuid.UUID, date time.Time, records []MarkRecord) MarkResult {
	return markAttendance(func(row model.AttendanceModel) error {
		return db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_student_id"},
				{Name: "attendance_batch_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_updated_at"}),
		}).Create(&row).Error
	}, batchID, courseID, date, records)
}

func markAttendance(upsert upsertFn, batchID uuid.UUID, courseID *uuid.UUID, date time.Time, records []MarkRecord) MarkResult {
	day := NormalizeDate(date)

	outcomes := make([]MarkOutcome, len(records))
	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec MarkRecord) {
			defer wg.Done()
			err := upsert(model.AttendanceModel{
				AttendanceStudentID: rec.StudentID,
				AttendanceBatchID:   batchID,
				AttendanceCourseID:  courseID,
				AttendanceDate:      day,
				AttendanceStatus:    rec.Status,
			})

			out := MarkOutcome{StudentID: rec.StudentID, Status: rec.Status, OK: err == nil}
			if err != nil {
				out.Error = err.Error()
			}
			outcomes[i] = out
		}(i, rec)
	}
	wg.Wait()

	res := MarkResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.OK {
			res.Marked++
		} else {
			res.Failed++
		}
	}
	return res
}

/* =========================
   Monthly report
========================= */

type ReportStudent struct {
	StudentID   uuid.UUID
	StudentCode string
	StudentName string
}

type ReportRow struct {
	StudentCode  string         `json:"student_code"`
	StudentName  string         `json:"student_name"`
	Attendance   map[int]string `json:"attendance"`
	TotalPresent int            `json:"total_present"`
	TotalAbsent  int            `json:"total_absent"`
}

// BuildReportRows turns sparse per-day records into one row per student.
// Records are indexed by student first, so the whole pass is
// O(students + records). Days without a record stay out of the map; the
// renderer treats a missing day as "no data", not as absent.
func BuildReportRows(students []ReportStudent, records []model.AttendanceModel) []ReportRow {
	byStudent := make(map[uuid.UUID][]model.AttendanceModel, len(students))
	for _, rec := range records {
		byStudent[rec.AttendanceStudentID] = append(byStudent[rec.AttendanceStudentID], rec)
	}

	rows := make([]ReportRow, 0, len(students))
	for _, s := range students {
		row := ReportRow{
			StudentCode: s.StudentCode,
			StudentName: s.StudentName,
			Attendance:  map[int]string{},
		}
		for _, rec := range byStudent[s.StudentID] {
			day := rec.AttendanceDate.Day()
			row.Attendance[day] = rec.AttendanceStatus
			switch rec.AttendanceStatus {
			case model.StatusPresent:
				row.TotalPresent++
			case model.StatusAbsent:
				row.TotalAbsent++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

/* =========================
   Personal stats
========================= */

type PersonalStats struct {
	TotalClasses int     `json:"total_classes"`
	TotalPresent int     `json:"total_present"`
	TotalAbsent  int     `json:"total_absent"`
	Percentage   float64 `json:"percentage"`
}

// Percentage of attended classes rounded to one decimal; 0 when there is
// nothing to divide by.
func ComputePercentage(totalPresent, totalClasses int) float64 {
	if totalClasses == 0 {
		return 0
	}
	return math.Round(float64(totalPresent)/float64(totalClasses)*1000) / 10
}

func BuildPersonalStats(records []model.AttendanceModel) PersonalStats {
	stats := PersonalStats{TotalClasses: len(records)}
	for _, rec := range records {
		switch rec.AttendanceStatus {
		case model.StatusPresent:
			stats.TotalPresent++
		case model.StatusAbsent:
			stats.TotalAbsent++
		}
	}
	stats.Percentage = ComputePercentage(stats.TotalPresent, stats.TotalClasses)
	return stats
}
