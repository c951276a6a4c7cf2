package domain

import (
	"regexp"
	"strconv"
	"time"

	"loadharbour/internal/core/validate"
)

// TruckStatus represents the operational state of a truck.
type TruckStatus string

const (
	TruckStatusActive       TruckStatus = "active"
	TruckStatusInUse        TruckStatus = "in_use"
	TruckStatusMaintenance  TruckStatus = "maintenance"
	TruckStatusOutOfService TruckStatus = "out_of_service"
)

// Truck represents a power unit in the fleet.
type Truck struct {
	ID      string      `json:"id"`
	UnitNo  string      `json:"unitNo"`
	PlateNo string      `json:"plateNo"`
	VIN     string      `json:"vin"`
	Make    string      `json:"make"`
	Model   string      `json:"model"`
	Year    string      `json:"year"`
	Status  TruckStatus `json:"status"`
	// CurrentDriverID optionally links the driver operating this unit.
	CurrentDriverID string `json:"currentDriverId,omitempty"`
}

var (
	unitNoRe = regexp.MustCompile(`^[A-Z0-9-]+$`)
	// VIN alphabet excludes I, O, and Q.
	vinRe  = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]+$`)
	yearRe = regexp.MustCompile(`^[0-9]+$`)
)

func yearInRange(v string) bool {
	year, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= time.Now().Year()+1
}

var truckSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "unitNo", Rules: []validate.Rule{
			validate.Required("Unit number is required"),
			validate.Pattern(unitNoRe, "Unit number must contain only uppercase letters, numbers, and hyphens"),
		}},
		{Name: "plateNo", Rules: []validate.Rule{
			validate.Required("Plate number is required"),
			validate.Pattern(unitNoRe, "Plate number must contain only uppercase letters, numbers, and hyphens"),
		}},
		{Name: "vin", Rules: []validate.Rule{
			validate.ExactLen(17, "VIN must be exactly 17 characters"),
			validate.Pattern(vinRe, "Invalid VIN format"),
		}},
		{Name: "make", Rules: []validate.Rule{
			validate.Required("Make is required"),
			validate.MaxLen(50, "Make must be less than 50 characters"),
		}},
		{Name: "model", Rules: []validate.Rule{
			validate.Required("Model is required"),
			validate.MaxLen(50, "Model must be less than 50 characters"),
		}},
		{Name: "year", Rules: []validate.Rule{
			validate.ExactLen(4, "Year must be 4 digits"),
			validate.Pattern(yearRe, "Year must be numeric"),
			validate.Check(yearInRange, "Invalid year"),
		}},
		{Name: "status", Rules: []validate.Rule{
			validate.OneOf("Invalid status",
				string(TruckStatusActive),
				string(TruckStatusInUse),
				string(TruckStatusMaintenance),
				string(TruckStatusOutOfService),
			),
		}},
	},
}

// Validate checks the truck against the form schema.
func (t Truck) Validate() error {
	errs := truckSchema.Validate(map[string]string{
		"unitNo":  t.UnitNo,
		"plateNo": t.PlateNo,
		"vin":     t.VIN,
		"make":    t.Make,
		"model":   t.Model,
		"year":    t.Year,
		"status":  string(t.Status),
	})
	if errs.Any() {
		return errs
	}
	return nil
}

// TruckPatch is a partial update: only non-nil fields change.
type TruckPatch struct {
	UnitNo          *string      `json:"unitNo"`
	PlateNo         *string      `json:"plateNo"`
	VIN             *string      `json:"vin"`
	Make            *string      `json:"make"`
	Model           *string      `json:"model"`
	Year            *string      `json:"year"`
	Status          *TruckStatus `json:"status"`
	CurrentDriverID *string      `json:"currentDriverId"`
}

// Apply shallow-merges the patch onto the truck.
func (p TruckPatch) Apply(t Truck) Truck {
	if p.UnitNo != nil {
		t.UnitNo = *p.UnitNo
	}
	if p.PlateNo != nil {
		t.PlateNo = *p.PlateNo
	}
	if p.VIN != nil {
		t.VIN = *p.VIN
	}
	if p.Make != nil {
		t.Make = *p.Make
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.CurrentDriverID != nil {
		t.CurrentDriverID = *p.CurrentDriverID
	}
	return t
}
