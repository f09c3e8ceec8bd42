package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePGError struct {
	code string
}

func (e *fakePGError) SQLState() string { return e.code }
func (e *fakePGError) Error() string    { return "SQLSTATE " + e.code }

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unique violation", err: &fakePGError{code: "23505"}, want: true},
		{name: "wrapped unique violation", err: fmt.Errorf("create: %w", &fakePGError{code: "23505"}), want: true},
		{name: "foreign key violation", err: &fakePGError{code: "23503"}},
		{name: "plain error", err: errors.New("duplicate key value")},
		{name: "nil", err: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}
