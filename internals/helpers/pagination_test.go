package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "exact fit", total: 20, page: 1, perPage: 10, totalPages: 2, hasNext: true},
		{name: "partial last page", total: 21, page: 3, perPage: 10, totalPages: 3, hasPrev: true},
		{name: "single page", total: 5, page: 1, perPage: 10, totalPages: 1},
		{name: "empty result has zero pages", total: 0, page: 1, perPage: 10, totalPages: 0},
		{name: "middle page", total: 35, page: 2, perPage: 10, totalPages: 4, hasNext: true, hasPrev: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestBuildPaginationFromPageDefaults(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestFixedPaging(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantPage   int
		wantOffset int
	}{
		{name: "first page", page: 1, perPage: 10, wantPage: 1, wantOffset: 0},
		{name: "third page", page: 3, perPage: 10, wantPage: 3, wantOffset: 20},
		{name: "zero page normalizes", page: 0, perPage: 10, wantPage: 1, wantOffset: 0},
		{name: "negative page normalizes", page: -4, perPage: 10, wantPage: 1, wantOffset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixedPaging(tt.page, tt.perPage)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantOffset, got.Offset)
			// The size is the contract: it is never caller-tunable.
			assert.Equal(t, tt.perPage, got.PerPage)
			assert.Equal(t, tt.perPage, got.Limit)
		})
	}
}
