//go:build unit

package inventory_test

import (
	"testing"

	"donorhub/internal/domain/donation"
	"donorhub/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDecrement(t *testing.T) {
	counter := inventory.ReconstructCounter(uuid.New(), uuid.New(), donation.BloodAPos, 3, 5, 1, 7)

	t.Run("within available units", func(t *testing.T) {
		assert.NoError(t, counter.ValidateDecrement(3))
	})

	t.Run("would go negative", func(t *testing.T) {
		assert.ErrorIs(t, counter.ValidateDecrement(4), inventory.ErrInsufficientUnits)
	})

	t.Run("zero or negative count", func(t *testing.T) {
		assert.ErrorIs(t, counter.ValidateDecrement(0), inventory.ErrInvalidDecrement)
		assert.ErrorIs(t, counter.ValidateDecrement(-1), inventory.ErrInvalidDecrement)
	})
}

func TestDecrement(t *testing.T) {
	counter := inventory.ReconstructCounter(uuid.New(), uuid.New(), donation.BloodOPos, 2, 5, 1, 0)

	require.NoError(t, counter.Decrement(1))
	assert.Equal(t, int32(1), counter.Units())

	require.NoError(t, counter.Decrement(1))
	assert.Equal(t, int32(0), counter.Units())

	// refused at zero, count untouched
	assert.ErrorIs(t, counter.Decrement(1), inventory.ErrInsufficientUnits)
	assert.Equal(t, int32(0), counter.Units())
}

func TestSynthesizeEmpty(t *testing.T) {
	counter := inventory.SynthesizeEmpty(uuid.New(), donation.BloodBNeg)

	assert.False(t, counter.IsPersisted())
	assert.Equal(t, int32(0), counter.Units())
	assert.ErrorIs(t, counter.ValidateDecrement(1), inventory.ErrInsufficientUnits)
}

func TestStockFlags(t *testing.T) {
	cases := []struct {
		name         string
		units        int32
		belowMinimum bool
		critical     bool
	}{
		{name: "healthy", units: 10, belowMinimum: false, critical: false},
		{name: "below minimum", units: 4, belowMinimum: true, critical: false},
		{name: "at critical threshold", units: 2, belowMinimum: true, critical: true},
		{name: "empty", units: 0, belowMinimum: true, critical: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := inventory.ReconstructCounter(uuid.New(), uuid.New(), donation.BloodAPos, tc.units, 5, 2, 0)
			assert.Equal(t, tc.belowMinimum, c.IsBelowMinimum())
			assert.Equal(t, tc.critical, c.IsCritical())
		})
	}
}
