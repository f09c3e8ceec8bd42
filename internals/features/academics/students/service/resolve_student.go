package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/academics/students/model"
)

// Callers supply a student reference that may be either the human-facing
// student code or the internal UUID (URL segments and search boxes use them
// interchangeably). Resolution goes code first, then id, each an explicit
// stage; a ref that is neither is simply not found.

var ErrStudentNotFound = errors.New("student not found")

// ParseInternalID reports whether ref has the shape of an internal id.
// Malformed refs must resolve to "not found", never to a query error.
func ParseInternalID(ref string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(ref))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ResolveStudent resolves ref to exactly one student record or ErrStudentNotFound.
func ResolveStudent(db *gorm.DB, ref string) (*model.StudentModel, error) {
	return resolveStudent(ref,
		func(code string) (*model.StudentModel, error) {
			return findStudent(db, "student_code = ?", code)
		},
		func(id uuid.UUID) (*model.StudentModel, error) {
			return findStudent(db, "student_id = ?", id)
		})
}

// resolveStudent runs the stages. A miss is always the ErrStudentNotFound
// sentinel; anything else is a storage failure, and the two must stay
// distinguishable because read paths tolerate the former but never the latter.
func resolveStudent(ref string, byCode func(string) (*model.StudentModel, error), byID func(uuid.UUID) (*model.StudentModel, error)) (*model.StudentModel, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrStudentNotFound
	}

	// Stage 1: by student code
	row, err := byCode(ref)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, ErrStudentNotFound) {
		return nil, err
	}

	// Stage 2: by internal id, only when ref parses as one
	id, ok := ParseInternalID(ref)
	if !ok {
		return nil, ErrStudentNotFound
	}
	return byID(id)
}

// ResolveStudentByUserID maps the signed-in account to its student profile.
func ResolveStudentByUserID(db *gorm.DB, userID uuid.UUID) (*model.StudentModel, error) {
	return findStudent(db, "student_user_id = ?", userID)
}

func findStudent(db *gorm.DB, query string, arg any) (*model.StudentModel, error) {
	var row model.StudentModel
	err := db.Where(query, arg).First(&row).Error
	if err == nil {
		return &row, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStudentNotFound
	}
	return nil, err
}
