//go:build unit

package donation_test

import (
	"strings"
	"testing"
	"time"

	"donorhub/internal/domain/donation"
	"donorhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDonation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		d, err := builder.NewDonationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, d)

		assert.NotEqual(t, uuid.Nil, d.ID())
		assert.Equal(t, donation.UsageStored, d.Status())
		assert.False(t, d.Used())
		assert.Nil(t, d.UsedHospitalID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.DonationBuilder)
			errIs  error
		}{
			{
				name:   "empty serial number",
				mutate: func(b *builder.DonationBuilder) { b.SerialNumber = "   " },
				errIs:  donation.ErrEmptySerialNumber,
			},
			{
				name:   "serial number too long",
				mutate: func(b *builder.DonationBuilder) { b.SerialNumber = strings.Repeat("x", 101) },
				errIs:  donation.ErrSerialTooLong,
			},
			{
				name:   "volume below minimum",
				mutate: func(b *builder.DonationBuilder) { b.VolumeML = donation.MinVolumeML - 1 },
				errIs:  donation.ErrInvalidVolume,
			},
			{
				name:   "volume above maximum",
				mutate: func(b *builder.DonationBuilder) { b.VolumeML = donation.MaxVolumeML + 1 },
				errIs:  donation.ErrInvalidVolume,
			},
			{
				name:   "volume at minimum",
				mutate: func(b *builder.DonationBuilder) { b.VolumeML = donation.MinVolumeML },
			},
			{
				name:   "volume at maximum",
				mutate: func(b *builder.DonationBuilder) { b.VolumeML = donation.MaxVolumeML },
			},
			{
				name:   "missing expiry date",
				mutate: func(b *builder.DonationBuilder) { b.ExpiryDate = nil },
				errIs:  donation.ErrMissingExpiry,
			},
			{
				name: "expiry in the past",
				mutate: func(b *builder.DonationBuilder) {
					past := b.CreatedAt.Add(-time.Hour)
					b.ExpiryDate = &past
				},
				errIs: donation.ErrExpiryInPast,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewDonationBuilder()
				tc.mutate(b)

				_, err := b.BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestMarkUsed(t *testing.T) {
	t.Run("stored unit can be consumed exactly once", func(t *testing.T) {
		d := builder.NewDonationBuilder().BuildDomainAt()
		hospitalID := uuid.New()
		now := time.Now()

		require.NoError(t, d.MarkUsed(hospitalID, now))
		assert.True(t, d.Used())
		assert.Equal(t, donation.UsageConsumed, d.Status())
		assert.Equal(t, hospitalID, *d.UsedHospitalID())
		assert.Equal(t, now, *d.UsedAt())

		assert.ErrorIs(t, d.MarkUsed(hospitalID, now), donation.ErrAlreadyUsed)
	})

	t.Run("guards", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.DonationBuilder)
			errIs  error
		}{
			{
				name:   "already used",
				mutate: func(b *builder.DonationBuilder) { b.Used = true; b.Status = donation.UsageConsumed },
				errIs:  donation.ErrAlreadyUsed,
			},
			{
				name:   "discarded unit",
				mutate: func(b *builder.DonationBuilder) { b.Status = donation.UsageDiscarded },
				errIs:  donation.ErrNotStored,
			},
			{
				name: "expired unit",
				mutate: func(b *builder.DonationBuilder) {
					past := time.Now().Add(-time.Hour)
					b.ExpiryDate = &past
				},
				errIs: donation.ErrDonationExpired,
			},
			{
				name:   "unknown blood type",
				mutate: func(b *builder.DonationBuilder) { b.BloodType = donation.BloodUnknown },
				errIs:  donation.ErrUnknownBloodType,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewDonationBuilder()
				tc.mutate(b)
				d := b.BuildDomainAt()

				assert.ErrorIs(t, d.CanBeUsed(time.Now()), tc.errIs)
			})
		}
	})
}

func TestNormalizeBloodType(t *testing.T) {
	cases := map[string]donation.BloodType{
		"A+":          donation.BloodAPos,
		"a+":          donation.BloodAPos,
		"O neg":       donation.BloodONeg,
		"0+":          donation.BloodOPos,
		"AB Positive": donation.BloodABPos,
		"B NEGATIVE":  donation.BloodBNeg,
		"  o pos  ":   donation.BloodOPos,
		"":            donation.BloodUnknown,
		"garbage":     donation.BloodUnknown,
	}
	for input, want := range cases {
		assert.Equal(t, want, donation.NormalizeBloodType(input), "input %q", input)
	}
}
