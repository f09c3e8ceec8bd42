package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/academics/students/model"
)

func TestParseInternalID(t *testing.T) {
	valid := uuid.New()

	tests := []struct {
		name string
		ref  string
		ok   bool
	}{
		{name: "valid uuid", ref: valid.String(), ok: true},
		{name: "valid uuid padded", ref: "  " + valid.String() + " ", ok: true},
		{name: "student code", ref: "STU-2019-0001"},
		{name: "mongo-style hex id", ref: "64a7f0c2e13b9a0012345678"},
		{name: "empty", ref: ""},
		{name: "nil uuid", ref: uuid.Nil.String()},
		{name: "garbage", ref: "not-an-id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseInternalID(tt.ref)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, valid, id)
			} else {
				assert.Equal(t, uuid.Nil, id)
			}
		})
	}
}

func TestResolveStudentStages(t *testing.T) {
	id := uuid.New()
	byCodeHit := &model.StudentModel{StudentCode: "STU-2019-0001"}
	byIDHit := &model.StudentModel{StudentID: id}

	miss := func(string) (*model.StudentModel, error) { return nil, ErrStudentNotFound }
	missID := func(uuid.UUID) (*model.StudentModel, error) { return nil, ErrStudentNotFound }

	t.Run("code hit short-circuits", func(t *testing.T) {
		got, err := resolveStudent("STU-2019-0001",
			func(code string) (*model.StudentModel, error) {
				assert.Equal(t, "STU-2019-0001", code)
				return byCodeHit, nil
			},
			func(uuid.UUID) (*model.StudentModel, error) {
				t.Error("id stage must not run after a code hit")
				return nil, ErrStudentNotFound
			})
		require.NoError(t, err)
		assert.Same(t, byCodeHit, got)
	})

	t.Run("code miss falls through to id", func(t *testing.T) {
		got, err := resolveStudent(id.String(), miss,
			func(gotID uuid.UUID) (*model.StudentModel, error) {
				assert.Equal(t, id, gotID)
				return byIDHit, nil
			})
		require.NoError(t, err)
		assert.Same(t, byIDHit, got)
	})

	t.Run("non-uuid ref never reaches id stage", func(t *testing.T) {
		_, err := resolveStudent("64a7f0c2e13b9a0012345678", miss,
			func(uuid.UUID) (*model.StudentModel, error) {
				t.Error("id stage must not run for a ref that is not a uuid")
				return nil, ErrStudentNotFound
			})
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("both stages miss", func(t *testing.T) {
		_, err := resolveStudent(id.String(), miss, missID)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("blank ref skips lookups entirely", func(t *testing.T) {
		_, err := resolveStudent("   ",
			func(string) (*model.StudentModel, error) {
				t.Error("code stage must not run for a blank ref")
				return nil, ErrStudentNotFound
			},
			func(uuid.UUID) (*model.StudentModel, error) {
				t.Error("id stage must not run for a blank ref")
				return nil, ErrStudentNotFound
			})
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

// Listing and stats endpoints swallow ErrStudentNotFound into an empty result,
// but a storage failure must surface to them as a 500. The resolver has to keep
// the two apart.
func TestResolveStudentStorageFailureIsNotAMiss(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := resolveStudent("STU-2019-0001",
		func(string) (*model.StudentModel, error) { return nil, boom },
		func(uuid.UUID) (*model.StudentModel, error) {
			t.Error("id stage must not run after a storage failure")
			return nil, ErrStudentNotFound
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrStudentNotFound)
}
