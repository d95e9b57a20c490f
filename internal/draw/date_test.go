package draw

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"20200101", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"04/11/2019", time.Date(2019, 11, 4, 0, 0, 0, 0, time.UTC)},
		{"4/1/2019", time.Date(2019, 1, 4, 0, 0, 0, 0, time.UTC)},
		{"06/10/08", time.Date(2008, 10, 6, 0, 0, 0, 0, time.UTC)},
		{"06/10/76", time.Date(1976, 10, 6, 0, 0, 0, 0, time.UTC)},
		{" 20081006 ", time.Date(2008, 10, 6, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseDate_Failures(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2020-01-01", "32/01/2020", "20201301"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDate(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDate))
		})
	}

	_, err := ParseDate("31/02/2020")
	require.Error(t, err)
	// one entry per layout tried
	assert.Contains(t, err.Error(), `"2/1/2006"`)
	assert.Contains(t, err.Error(), `"2/1/06"`)
	assert.Contains(t, err.Error(), `"20060102"`)
}
