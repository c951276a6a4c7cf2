package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_FirstViolationWins(t *testing.T) {
	schema := Schema{
		Fields: []Field{
			{Name: "vin", Rules: []Rule{
				ExactLen(17, "VIN must be exactly 17 characters"),
				Pattern(regexp.MustCompile(`^[A-HJ-NPR-Z0-9]+$`), "Invalid VIN format"),
			}},
		},
	}

	errs := schema.Validate(map[string]string{"vin": "SHORT"})
	require.True(t, errs.Any())
	assert.Equal(t, "VIN must be exactly 17 characters", errs["vin"])

	errs = schema.Validate(map[string]string{"vin": "IOQCM82633A123456"})
	require.True(t, errs.Any())
	assert.Equal(t, "Invalid VIN format", errs["vin"])

	errs = schema.Validate(map[string]string{"vin": "1HGCM82633A123456"})
	assert.False(t, errs.Any())
}

func TestSchema_OptionalFieldsSkipEmpty(t *testing.T) {
	schema := Schema{
		Fields: []Field{
			{Name: "brokerName", Optional: true, Rules: []Rule{MinLen(2, "too short")}},
		},
	}

	assert.False(t, schema.Validate(map[string]string{}).Any())
	assert.True(t, schema.Validate(map[string]string{"brokerName": "x"}).Any())
}

func TestSchema_CrossRuleRunsAfterFieldsPass(t *testing.T) {
	schema := Schema{
		Fields: []Field{
			{Name: "pickupTime", Rules: []Rule{Required("Pickup time is required")}},
			{Name: "deliveryTime", Rules: []Rule{Required("Delivery time is required")}},
		},
		Cross: []CrossRule{
			{
				Target: "deliveryTime",
				Fields: []string{"pickupTime", "deliveryTime"},
				Check: func(values map[string]string) string {
					pickup, err1 := ParseTime(values["pickupTime"])
					delivery, err2 := ParseTime(values["deliveryTime"])
					if err1 != nil || err2 != nil || delivery.Before(pickup) {
						return "Delivery time must not precede pickup time"
					}
					return ""
				},
			},
		},
	}

	// Field failure gates the cross rule: only the field message surfaces.
	errs := schema.Validate(map[string]string{"pickupTime": "2024-01-02T10:00"})
	require.True(t, errs.Any())
	assert.Equal(t, "Delivery time is required", errs["deliveryTime"])

	errs = schema.Validate(map[string]string{
		"pickupTime":   "2024-01-02T10:00",
		"deliveryTime": "2024-01-01T10:00",
	})
	require.True(t, errs.Any())
	assert.Equal(t, "Delivery time must not precede pickup time", errs["deliveryTime"])

	errs = schema.Validate(map[string]string{
		"pickupTime":   "2024-01-01T10:00",
		"deliveryTime": "2024-01-02T10:00",
	})
	assert.False(t, errs.Any())
}

func TestRules(t *testing.T) {
	t.Run("Required", func(t *testing.T) {
		assert.Equal(t, "missing", Required("missing")(""))
		assert.Empty(t, Required("missing")("x"))
	})

	t.Run("OneOf", func(t *testing.T) {
		rule := OneOf("bad status", "active", "maintenance")
		assert.Empty(t, rule("active"))
		assert.Equal(t, "bad status", rule("retired"))
	})

	t.Run("IntBetween", func(t *testing.T) {
		rule := IntBetween(1900, 2027, "Invalid year")
		assert.Empty(t, rule("2022"))
		assert.Equal(t, "Invalid year", rule("1889"))
		assert.Equal(t, "Invalid year", rule("20x2"))
	})

	t.Run("Email", func(t *testing.T) {
		rule := Email("Invalid email address")
		assert.Empty(t, rule("driver@example.com"))
		assert.Equal(t, "Invalid email address", rule("not-an-email"))
	})

	t.Run("FutureDate", func(t *testing.T) {
		rule := FutureDate("must be in the future")
		assert.Empty(t, rule("2099-12-31"))
		assert.Equal(t, "must be in the future", rule("2020-01-01"))
		assert.Equal(t, "must be in the future", rule("not-a-date"))
	})
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{"b": "second", "a": "first"}
	assert.Equal(t, "validation failed; a: first; b: second", errs.Error())
}

func TestParseTime_Layouts(t *testing.T) {
	for _, v := range []string{
		"2024-01-02T10:00",
		"2024-01-02T10:00:00",
		"2024-01-02T10:00:00Z",
		"2024-01-02",
	} {
		_, err := ParseTime(v)
		assert.NoError(t, err, v)
	}

	_, err := ParseTime("02/01/2024")
	assert.Error(t, err)
}
