package domain

import (
	"loadharbour/internal/core/validate"
)

// LoadStatus represents the dispatch state of a load.
type LoadStatus string

const (
	LoadStatusPlanned    LoadStatus = "planned"
	LoadStatusInProgress LoadStatus = "in_progress"
	LoadStatusCompleted  LoadStatus = "completed"
	LoadStatusCancelled  LoadStatus = "cancelled"
)

// Location is a stop address.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country,omitempty"`
}

// Load represents a dispatched shipment.
type Load struct {
	ID          string     `json:"id"`
	ReferenceNo string     `json:"referenceNo"`
	Status      LoadStatus `json:"status"`
	// PickupTime and DeliveryTime are datetime-local strings; delivery
	// must not precede pickup.
	PickupTime       string   `json:"pickupTime"`
	DeliveryTime     string   `json:"deliveryTime"`
	PickupLocation   Location `json:"pickupLocation"`
	DeliveryLocation Location `json:"deliveryLocation"`
	DriverID         string   `json:"driverId,omitempty"`
	TruckID          string   `json:"truckId,omitempty"`
	TrailerID        string   `json:"trailerId,omitempty"`
	BrokerName       string   `json:"brokerName,omitempty"`
	Amount           float64  `json:"amount,omitempty"`
	FuelSurcharge    float64  `json:"fuelSurcharge,omitempty"`
	Accessorials     float64  `json:"accessorials,omitempty"`
}

var loadSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "referenceNo", Rules: []validate.Rule{
			validate.Required("Reference number is required"),
		}},
		{Name: "status", Rules: []validate.Rule{
			validate.OneOf("Invalid status",
				string(LoadStatusPlanned),
				string(LoadStatusInProgress),
				string(LoadStatusCompleted),
				string(LoadStatusCancelled),
			),
		}},
		{Name: "pickupTime", Rules: []validate.Rule{
			validate.Required("Pickup time is required"),
			validate.Check(isTime, "Invalid pickup time"),
		}},
		{Name: "deliveryTime", Rules: []validate.Rule{
			validate.Required("Delivery time is required"),
			validate.Check(isTime, "Invalid delivery time"),
		}},
		{Name: "pickupLocation.address", Rules: []validate.Rule{validate.Required("Pickup address is required")}},
		{Name: "pickupLocation.city", Rules: []validate.Rule{validate.Required("Pickup city is required")}},
		{Name: "pickupLocation.state", Rules: []validate.Rule{validate.Required("Pickup state is required")}},
		{Name: "pickupLocation.zipCode", Rules: []validate.Rule{validate.Required("Pickup ZIP code is required")}},
		{Name: "deliveryLocation.address", Rules: []validate.Rule{validate.Required("Delivery address is required")}},
		{Name: "deliveryLocation.city", Rules: []validate.Rule{validate.Required("Delivery city is required")}},
		{Name: "deliveryLocation.state", Rules: []validate.Rule{validate.Required("Delivery state is required")}},
		{Name: "deliveryLocation.zipCode", Rules: []validate.Rule{validate.Required("Delivery ZIP code is required")}},
	},
	Cross: []validate.CrossRule{
		{
			Target: "deliveryTime",
			Fields: []string{"pickupTime", "deliveryTime"},
			Check: func(values map[string]string) string {
				pickup, err1 := validate.ParseTime(values["pickupTime"])
				delivery, err2 := validate.ParseTime(values["deliveryTime"])
				if err1 != nil || err2 != nil {
					return ""
				}
				if delivery.Before(pickup) {
					return "Delivery time must not precede pickup time"
				}
				return ""
			},
		},
	},
}

func isTime(v string) bool {
	_, err := validate.ParseTime(v)
	return err == nil
}

// Validate checks the load against the form schema.
func (l Load) Validate() error {
	errs := loadSchema.Validate(map[string]string{
		"referenceNo":              l.ReferenceNo,
		"status":                   string(l.Status),
		"pickupTime":               l.PickupTime,
		"deliveryTime":             l.DeliveryTime,
		"pickupLocation.address":   l.PickupLocation.Address,
		"pickupLocation.city":      l.PickupLocation.City,
		"pickupLocation.state":     l.PickupLocation.State,
		"pickupLocation.zipCode":   l.PickupLocation.ZipCode,
		"deliveryLocation.address": l.DeliveryLocation.Address,
		"deliveryLocation.city":    l.DeliveryLocation.City,
		"deliveryLocation.state":   l.DeliveryLocation.State,
		"deliveryLocation.zipCode": l.DeliveryLocation.ZipCode,
	})
	if errs.Any() {
		return errs
	}
	return nil
}

// LoadPatch is a partial update: only non-nil fields change.
type LoadPatch struct {
	ReferenceNo      *string     `json:"referenceNo"`
	Status           *LoadStatus `json:"status"`
	PickupTime       *string     `json:"pickupTime"`
	DeliveryTime     *string     `json:"deliveryTime"`
	PickupLocation   *Location   `json:"pickupLocation"`
	DeliveryLocation *Location   `json:"deliveryLocation"`
	DriverID         *string     `json:"driverId"`
	TruckID          *string     `json:"truckId"`
	TrailerID        *string     `json:"trailerId"`
	BrokerName       *string     `json:"brokerName"`
	Amount           *float64    `json:"amount"`
	FuelSurcharge    *float64    `json:"fuelSurcharge"`
	Accessorials     *float64    `json:"accessorials"`
}

// Apply shallow-merges the patch onto the load. Locations replace as a
// whole, matching how the form submits them.
func (p LoadPatch) Apply(l Load) Load {
	if p.ReferenceNo != nil {
		l.ReferenceNo = *p.ReferenceNo
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.PickupTime != nil {
		l.PickupTime = *p.PickupTime
	}
	if p.DeliveryTime != nil {
		l.DeliveryTime = *p.DeliveryTime
	}
	if p.PickupLocation != nil {
		l.PickupLocation = *p.PickupLocation
	}
	if p.DeliveryLocation != nil {
		l.DeliveryLocation = *p.DeliveryLocation
	}
	if p.DriverID != nil {
		l.DriverID = *p.DriverID
	}
	if p.TruckID != nil {
		l.TruckID = *p.TruckID
	}
	if p.TrailerID != nil {
		l.TrailerID = *p.TrailerID
	}
	if p.BrokerName != nil {
		l.BrokerName = *p.BrokerName
	}
	if p.Amount != nil {
		l.Amount = *p.Amount
	}
	if p.FuelSurcharge != nil {
		l.FuelSurcharge = *p.FuelSurcharge
	}
	if p.Accessorials != nil {
		l.Accessorials = *p.Accessorials
	}
	return l
}
