package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(uint64(math.MaxInt) + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestInt64ToInt(t *testing.T) {
	got, err := Int64ToInt(-42)
	assert.NoError(t, err)
	assert.Equal(t, -42, got)

	got, err = Int64ToInt(math.MaxInt32)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt32, got)
}
