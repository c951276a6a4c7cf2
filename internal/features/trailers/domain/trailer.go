package domain

import (
	"regexp"
	"strconv"
	"time"

	"loadharbour/internal/core/validate"
)

// TrailerStatus represents the operational state of a trailer.
type TrailerStatus string

const (
	TrailerStatusActive       TrailerStatus = "active"
	TrailerStatusMaintenance  TrailerStatus = "maintenance"
	TrailerStatusOutOfService TrailerStatus = "out_of_service"
)

// TrailerType is the trailer body style.
type TrailerType string

const (
	TrailerTypeDryVan   TrailerType = "Dry Van"
	TrailerTypeReefer   TrailerType = "Reefer"
	TrailerTypeFlatbed  TrailerType = "Flatbed"
	TrailerTypeStepDeck TrailerType = "Step Deck"
	TrailerTypeLowboy   TrailerType = "Lowboy"
)

// Trailer represents a towed unit in the fleet.
type Trailer struct {
	ID      string      `json:"id"`
	UnitNo  string      `json:"unitNo"`
	PlateNo string      `json:"plateNo"`
	VIN     string      `json:"vin"`
	Type    TrailerType `json:"type"`
	// Length is the trailer length in feet, kept as the form submits it.
	Length string        `json:"length"`
	Year   string        `json:"year"`
	Status TrailerStatus `json:"status"`
}

var (
	unitNoRe = regexp.MustCompile(`^[A-Z0-9-]+$`)
	vinRe    = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]+$`)
	digitsRe = regexp.MustCompile(`^\d+$`)
)

func yearInRange(v string) bool {
	year, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= time.Now().Year()+1
}

var trailerSchema = validate.Schema{
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
		{Name: "type", Rules: []validate.Rule{
			validate.OneOf("Invalid trailer type",
				string(TrailerTypeDryVan),
				string(TrailerTypeReefer),
				string(TrailerTypeFlatbed),
				string(TrailerTypeStepDeck),
				string(TrailerTypeLowboy),
			),
		}},
		{Name: "length", Rules: []validate.Rule{
			validate.Required("Length is required"),
			validate.Pattern(digitsRe, "Length must be a number"),
		}},
		{Name: "year", Rules: []validate.Rule{
			validate.ExactLen(4, "Year must be 4 digits"),
			validate.Pattern(digitsRe, "Year must be numeric"),
			validate.Check(yearInRange, "Invalid year"),
		}},
		{Name: "status", Rules: []validate.Rule{
			validate.OneOf("Invalid status",
				string(TrailerStatusActive),
				string(TrailerStatusMaintenance),
				string(TrailerStatusOutOfService),
			),
		}},
	},
}

// Validate checks the trailer against the form schema.
func (t Trailer) Validate() error {
	errs := trailerSchema.Validate(map[string]string{
		"unitNo":  t.UnitNo,
		"plateNo": t.PlateNo,
		"vin":     t.VIN,
		"type":    string(t.Type),
		"length":  t.Length,
		"year":    t.Year,
		"status":  string(t.Status),
	})
	if errs.Any() {
		return errs
	}
	return nil
}

// TrailerPatch is a partial update: only non-nil fields change.
type TrailerPatch struct {
	UnitNo  *string        `json:"unitNo"`
	PlateNo *string        `json:"plateNo"`
	VIN     *string        `json:"vin"`
	Type    *TrailerType   `json:"type"`
	Length  *string        `json:"length"`
	Year    *string        `json:"year"`
	Status  *TrailerStatus `json:"status"`
}

// Apply shallow-merges the patch onto the trailer.
func (p TrailerPatch) Apply(t Trailer) Trailer {
	if p.UnitNo != nil {
		t.UnitNo = *p.UnitNo
	}
	if p.PlateNo != nil {
		t.PlateNo = *p.PlateNo
	}
	if p.VIN != nil {
		t.VIN = *p.VIN
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Length != nil {
		t.Length = *p.Length
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
