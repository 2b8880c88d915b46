package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseDate covers the vCard BDAY layouts accepted on import.
func TestParseDate(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		wantDate      time.Time
		wantYearKnown bool
		wantErr       bool
	}{
		{"Dashed", "1990-06-15", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true, false},
		{"Basic", "19900615", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true, false},
		{"RFC3339", "1990-06-15T00:00:00Z", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true, false},
		{"No year dashed", "--06-15", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), false, false},
		{"No year basic", "--0229", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), false, false},
		{"Garbage", "June 15th", time.Time{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, yearKnown, err := parseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.wantDate.Equal(got), "got %v", got)
			assert.Equal(t, tt.wantYearKnown, yearKnown)
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "380501234567", digitsOnly("+38 (050) 123-45-67"))
	assert.Equal(t, "", digitsOnly("n/a"))
}
