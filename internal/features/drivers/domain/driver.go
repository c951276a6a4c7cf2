package domain

import (
	"regexp"

	"loadharbour/internal/core/validate"
)

// DriverStatus represents the duty state of a driver.
type DriverStatus string

const (
	DriverStatusActive      DriverStatus = "active"
	DriverStatusOnTrip      DriverStatus = "on_trip"
	DriverStatusOffDuty     DriverStatus = "off_duty"
	DriverStatusMaintenance DriverStatus = "maintenance"
)

// Driver represents a company driver.
type Driver struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
	// LicenseExpiry is a date string; it must lie in the future at create/edit time.
	LicenseExpiry string       `json:"licenseExpiry"`
	Status        DriverStatus `json:"status"`
}

var phoneRe = regexp.MustCompile(`^[0-9+\-() ]+$`)

var driverSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "firstName", Rules: []validate.Rule{
			validate.MinLen(2, "First name must be at least 2 characters"),
			validate.MaxLen(50, "First name must be less than 50 characters"),
		}},
		{Name: "lastName", Rules: []validate.Rule{
			validate.MinLen(2, "Last name must be at least 2 characters"),
			validate.MaxLen(50, "Last name must be less than 50 characters"),
		}},
		{Name: "email", Rules: []validate.Rule{
			validate.Email("Invalid email address"),
		}},
		{Name: "phone", Rules: []validate.Rule{
			validate.MinLen(10, "Phone number must be at least 10 characters"),
			validate.MaxLen(15, "Phone number must be less than 15 characters"),
			validate.Pattern(phoneRe, "Invalid phone number format"),
		}},
		{Name: "licenseNumber", Rules: []validate.Rule{
			validate.MinLen(5, "License number must be at least 5 characters"),
			validate.MaxLen(20, "License number must be less than 20 characters"),
		}},
		{Name: "licenseExpiry", Rules: []validate.Rule{
			validate.FutureDate("License expiry date must be in the future"),
		}},
		{Name: "status", Rules: []validate.Rule{
			validate.OneOf("Invalid status",
				string(DriverStatusActive),
				string(DriverStatusOnTrip),
				string(DriverStatusOffDuty),
				string(DriverStatusMaintenance),
			),
		}},
	},
}

// Validate checks the driver against the form schema.
func (d Driver) Validate() error {
	errs := driverSchema.Validate(map[string]string{
		"firstName":     d.FirstName,
		"lastName":      d.LastName,
		"email":         d.Email,
		"phone":         d.Phone,
		"licenseNumber": d.LicenseNumber,
		"licenseExpiry": d.LicenseExpiry,
		"status":        string(d.Status),
	})
	if errs.Any() {
		return errs
	}
	return nil
}

// DriverPatch is a partial update: only non-nil fields change.
type DriverPatch struct {
	FirstName     *string       `json:"firstName"`
	LastName      *string       `json:"lastName"`
	Email         *string       `json:"email"`
	Phone         *string       `json:"phone"`
	LicenseNumber *string       `json:"licenseNumber"`
	LicenseExpiry *string       `json:"licenseExpiry"`
	Status        *DriverStatus `json:"status"`
}

// Apply shallow-merges the patch onto the driver.
func (p DriverPatch) Apply(d Driver) Driver {
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.LicenseNumber != nil {
		d.LicenseNumber = *p.LicenseNumber
	}
	if p.LicenseExpiry != nil {
		d.LicenseExpiry = *p.LicenseExpiry
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	return d
}
