package domain

import (
	"strconv"

	"loadharbour/internal/core/validate"
)

// InvoiceStatus is the billing lifecycle state of a receivable.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusBilled   InvoiceStatus = "billed"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
	InvoiceStatusDisputed InvoiceStatus = "disputed"
)

// ChargeType classifies an accessorial charge.
type ChargeType string

const (
	ChargeTypeDetention ChargeType = "detention"
	ChargeTypeLumper    ChargeType = "lumper"
	ChargeTypeTONU      ChargeType = "tonu"
	ChargeTypeOther     ChargeType = "other"
)

// Broker identifies the paying party on a receivable.
type Broker struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PaymentTerms int    `json:"paymentTerms"`
	MC           string `json:"mc"`
}

// Document is a file attached to an invoice (BOL, POD, lumper receipt).
type Document struct {
	Type       string `json:"type"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

// BillingStatus is the invoice sub-record of a receivable.
type BillingStatus struct {
	ID                string        `json:"id"`
	LoadID            string        `json:"loadId"`
	InvoiceNumber     string        `json:"invoiceNumber"`
	InvoiceDate       string        `json:"invoiceDate,omitempty"`
	DueDate           string        `json:"dueDate,omitempty"`
	Amount            float64       `json:"amount"`
	Status            InvoiceStatus `json:"status"`
	BilledDate        string        `json:"billedDate,omitempty"`
	PaidDate          string        `json:"paidDate,omitempty"`
	Documents         []Document    `json:"documents"`
	Notes             string        `json:"notes"`
	QuickPayAvailable bool          `json:"quickPayAvailable"`
	QuickPayFee       float64       `json:"quickPayFee"`
	Factored          bool          `json:"factored"`
}

// AdditionalCharge is an accessorial billed on top of the base rate.
// Only approved charges count toward the total.
type AdditionalCharge struct {
	Type        ChargeType `json:"type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Approved    bool       `json:"approved"`
}

// AccountReceivable tracks the money owed for a delivered load.
type AccountReceivable struct {
	ID                string             `json:"id"`
	LoadID            string             `json:"loadId"`
	BrokerID          string             `json:"brokerId"`
	Broker            Broker             `json:"broker"`
	RateConfirmation  string             `json:"rateConfirmation"`
	Amount            float64            `json:"amount"`
	PickupDate        string             `json:"pickupDate"`
	DeliveryDate      string             `json:"deliveryDate"`
	Status            BillingStatus      `json:"status"`
	AdditionalCharges []AdditionalCharge `json:"additionalCharges"`
	TotalAmount       float64            `json:"totalAmount"`
	CreatedAt         string             `json:"createdAt"`
	UpdatedAt         string             `json:"updatedAt"`
}

var receivableSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "loadId", Rules: []validate.Rule{
			validate.Required("Load is required"),
		}},
		{Name: "rateConfirmation", Rules: []validate.Rule{
			validate.Required("Rate confirmation is required"),
		}},
		{Name: "amount", Rules: []validate.Rule{
			validate.Required("Amount is required"),
			validate.Check(isPositiveAmount, "Amount must be a positive number"),
		}},
		{Name: "broker.company", Rules: []validate.Rule{
			validate.Required("Broker company is required"),
		}},
		{Name: "broker.email", Optional: true, Rules: []validate.Rule{
			validate.Email("Invalid broker email"),
		}},
		{Name: "status.status", Rules: []validate.Rule{
			validate.OneOf("Invalid billing status",
				string(InvoiceStatusPending),
				string(InvoiceStatusBilled),
				string(InvoiceStatusPaid),
				string(InvoiceStatusOverdue),
				string(InvoiceStatusDisputed),
			),
		}},
	},
}

func isPositiveAmount(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f > 0
}

func formatAmount(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Validate checks the receivable against the form schema, including
// each additional charge.
func (r AccountReceivable) Validate() error {
	errs := validate.Errors{}

	schemaErrs := receivableSchema.Validate(map[string]string{
		"loadId":           r.LoadID,
		"rateConfirmation": r.RateConfirmation,
		"amount":           formatAmount(r.Amount),
		"broker.company":   r.Broker.Company,
		"broker.email":     r.Broker.Email,
		"status.status":    string(r.Status.Status),
	})
	for field, msg := range schemaErrs {
		errs[field] = msg
	}

	for i, charge := range r.AdditionalCharges {
		prefix := "additionalCharges." + strconv.Itoa(i)
		switch charge.Type {
		case ChargeTypeDetention, ChargeTypeLumper, ChargeTypeTONU, ChargeTypeOther:
		default:
			errs[prefix+".type"] = "Invalid charge type"
		}
		if charge.Amount <= 0 {
			errs[prefix+".amount"] = "Charge amount must be a positive number"
		}
	}

	if errs.Any() {
		return errs
	}
	return nil
}

// Total computes the collectible amount: the base rate plus every
// approved additional charge.
func (r AccountReceivable) Total() float64 {
	total := r.Amount
	for _, charge := range r.AdditionalCharges {
		if charge.Approved {
			total += charge.Amount
		}
	}
	return total
}

// ReceivablePatch is a partial update: only non-nil fields change.
type ReceivablePatch struct {
	LoadID            *string             `json:"loadId"`
	BrokerID          *string             `json:"brokerId"`
	Broker            *Broker             `json:"broker"`
	RateConfirmation  *string             `json:"rateConfirmation"`
	Amount            *float64            `json:"amount"`
	PickupDate        *string             `json:"pickupDate"`
	DeliveryDate      *string             `json:"deliveryDate"`
	Status            *BillingStatus      `json:"status"`
	AdditionalCharges *[]AdditionalCharge `json:"additionalCharges"`
}

// Apply shallow-merges the patch onto the receivable. The broker,
// billing status, and charges list replace as a whole.
func (p ReceivablePatch) Apply(r AccountReceivable) AccountReceivable {
	if p.LoadID != nil {
		r.LoadID = *p.LoadID
	}
	if p.BrokerID != nil {
		r.BrokerID = *p.BrokerID
	}
	if p.Broker != nil {
		r.Broker = *p.Broker
	}
	if p.RateConfirmation != nil {
		r.RateConfirmation = *p.RateConfirmation
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.PickupDate != nil {
		r.PickupDate = *p.PickupDate
	}
	if p.DeliveryDate != nil {
		r.DeliveryDate = *p.DeliveryDate
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.AdditionalCharges != nil {
		r.AdditionalCharges = *p.AdditionalCharges
	}
	return r
}
