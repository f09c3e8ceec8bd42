package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "sekolahku_backend/internals/features/academics/batches/model"
	studentSvc "sekolahku_backend/internals/features/academics/students/service"
	dto "sekolahku_backend/internals/features/attendance/dto"
	model "sekolahku_backend/internals/features/attendance/model"
	service "sekolahku_backend/internals/features/attendance/service"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ======================= MARK ======================= */
// POST /api/a/attendance
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := req.ParseDate()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var batch batchModel.BatchModel
	if err := h.DB.Where("batch_id = ?", req.BatchID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	courseID := req.CourseID
	if courseID == nil {
		courseID = batch.BatchCourseID
	}

	records := make([]service.MarkRecord, 0, len(req.AttendanceData))
	for _, e := range req.AttendanceData {
		records = append(records, service.MarkRecord{StudentID: e.StudentID, Status: e.Status})
	}

	result := service.MarkAttendance(h.DB, req.BatchID, courseID, date, records)
	if result.Failed > 0 {
		// Partial success stays partial: applied upserts are not rolled back,
		// the caller gets the per-record outcomes and decides.
		return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
			"success": false,
			"message": "Attendance marked with failures",
			"data":    result,
		})
	}
	return helper.JsonCreated(c, "Attendance marked successfully", result)
}

/* ======================= MONTHLY REPORT ======================= */
// GET /api/a/attendance/report?batch_id=&month=&year=
func (h *AttendanceController) Report(c *fiber.Ctx) error {
	batchID := c.Query("batch_id")
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if batchID == "" || month < 1 || month > 12 || year == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide batch_id, month, and year")
	}

	start, end := service.MonthRange(month, year)

	// Batch members via enrollments; an unknown batch simply yields an empty
	// report, not an error.
	var students []service.ReportStudent
	if err := h.DB.
		Table("enrollments").
		Select("students.student_id, students.student_code, students.student_name").
		Joins("JOIN students ON students.student_id = enrollments.enrollment_student_id").
		Where("enrollments.enrollment_batch_id = ?", batchID).
		Order("students.student_code ASC").
		Scan(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var records []model.AttendanceModel
	if err := h.DB.
		Where("attendance_batch_id = ? AND attendance_date BETWEEN ? AND ?", batchID, start, end).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", service.BuildReportRows(students, records))
}

/* ======================= MY ATTENDANCE ======================= */
// GET /api/u/attendance/my-attendance
func (h *AttendanceController) MyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	student, err := studentSvc.ResolveStudentByUserID(h.DB, userID)
	if err != nil {
		if errors.Is(err, studentSvc.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Lifetime scan, no date filter.
	var records []model.AttendanceModel
	if err := h.DB.
		Where("attendance_student_id = ?", student.StudentID).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", service.BuildPersonalStats(records))
}
