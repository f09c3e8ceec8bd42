package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", date: "2019-02-14", want: time.Date(2019, 2, 14, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", date: "2019-02-14T09:30:00Z", want: time.Date(2019, 2, 14, 9, 30, 0, 0, time.UTC)},
		{name: "padded", date: "  2019-02-14 ", want: time.Date(2019, 2, 14, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", date: "14/02/2019", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MarkAttendanceRequest{Date: tt.date}
			got, err := req.ParseDate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}
