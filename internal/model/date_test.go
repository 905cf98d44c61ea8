package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := ParseDate("2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("empty string means no date", func(t *testing.T) {
		d, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := ParseDate("03/05/2024")
		assert.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", FormatDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}
