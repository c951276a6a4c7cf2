package domain

import (
	"testing"

	"loadharbour/internal/core/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrailer() Trailer {
	return Trailer{
		UnitNo:  "TRL-001",
		PlateNo: "ABC123",
		VIN:     "1HGCM82633A123456",
		Type:    TrailerTypeDryVan,
		Length:  "53",
		Year:    "2022",
		Status:  TrailerStatusActive,
	}
}

func TestTrailer_Validate(t *testing.T) {
	assert.NoError(t, validTrailer().Validate())
}

func TestTrailer_Validate_VIN(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		bad := validTrailer()
		bad.VIN = "SHORT"

		var errs validate.Errors
		require.ErrorAs(t, bad.Validate(), &errs)
		assert.Equal(t, "VIN must be exactly 17 characters", errs["vin"])
	})

	t.Run("ForbiddenLetters", func(t *testing.T) {
		// I, O, and Q are not part of the VIN alphabet.
		bad := validTrailer()
		bad.VIN = "IOQCM82633A123456"

		var errs validate.Errors
		require.ErrorAs(t, bad.Validate(), &errs)
		assert.Equal(t, "Invalid VIN format", errs["vin"])
	})
}

func TestTrailer_Validate_Fields(t *testing.T) {
	t.Run("LowercaseUnitNo", func(t *testing.T) {
		bad := validTrailer()
		bad.UnitNo = "trl-001"

		var errs validate.Errors
		require.ErrorAs(t, bad.Validate(), &errs)
		assert.Contains(t, errs["unitNo"], "uppercase")
	})

	t.Run("UnknownType", func(t *testing.T) {
		bad := validTrailer()
		bad.Type = "Tanker"

		var errs validate.Errors
		require.ErrorAs(t, bad.Validate(), &errs)
		assert.Equal(t, "Invalid trailer type", errs["type"])
	})

	t.Run("NonNumericLength", func(t *testing.T) {
		bad := validTrailer()
		bad.Length = "53ft"

		var errs validate.Errors
		require.ErrorAs(t, bad.Validate(), &errs)
		assert.Equal(t, "Length must be a number", errs["length"])
	})

	t.Run("YearOutOfRange", func(t *testing.T) {
		bad := validTrailer()
		bad.Year = "1899"

		var errs validate.Errors
		require.ErrorAs(t, bad.Validate(), &errs)
		assert.Equal(t, "Invalid year", errs["year"])
	})
}

func TestTrailerPatch_Apply(t *testing.T) {
	base := validTrailer()
	base.ID = "trailer-1"

	status := TrailerStatusMaintenance
	length := "48"
	merged := TrailerPatch{Status: &status, Length: &length}.Apply(base)

	assert.Equal(t, TrailerStatusMaintenance, merged.Status)
	assert.Equal(t, "48", merged.Length)
	assert.Equal(t, base.VIN, merged.VIN)
	assert.Equal(t, base.ID, merged.ID)

	// The empty patch is the identity.
	assert.Equal(t, base, TrailerPatch{}.Apply(base))
}
