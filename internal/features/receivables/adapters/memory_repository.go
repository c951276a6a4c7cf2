package adapters

import (
	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/receivables/domain"
)

// NewMemoryRepository creates an in-memory receivable store. Invoice
// numbers are unique across open receivables.
func NewMemoryRepository() *storage.Store[domain.AccountReceivable] {
	return storage.New(storage.Config[domain.AccountReceivable]{
		ID:     func(ar domain.AccountReceivable) string { return ar.ID },
		WithID: func(ar domain.AccountReceivable, id string) domain.AccountReceivable { ar.ID = id; return ar },
		UniqueKeys: []storage.UniqueKey[domain.AccountReceivable]{
			{Field: "Invoice number", Value: func(ar domain.AccountReceivable) string { return ar.Status.InvoiceNumber }},
		},
	})
}

// Seed loads the demo receivables used in development mode.
func Seed(store *storage.Store[domain.AccountReceivable]) {
	store.Seed([]domain.AccountReceivable{
		{
			ID:       "ar-1",
			LoadID:   "load-1001",
			BrokerID: "broker-1",
			Broker: domain.Broker{
				ID:           "broker-1",
				Name:         "John Broker",
				Company:      "ABC Logistics",
				Email:        "john@abclogistics.com",
				Phone:        "123-456-7890",
				PaymentTerms: 30,
				MC:           "MC123456",
			},
			RateConfirmation: "RC123456",
			Amount:           2450,
			PickupDate:       "2026-08-20T14:00:00Z",
			DeliveryDate:     "2026-08-21T14:00:00Z",
			Status: domain.BillingStatus{
				ID:                "status-1",
				LoadID:            "load-1001",
				InvoiceNumber:     "INV-2026-001",
				InvoiceDate:       "2026-08-21",
				DueDate:           "2026-09-20",
				Amount:            2450,
				Status:            domain.InvoiceStatusPending,
				Documents:         []domain.Document{},
				QuickPayAvailable: true,
				QuickPayFee:       50,
			},
			AdditionalCharges: []domain.AdditionalCharge{
				{
					Type:        domain.ChargeTypeDetention,
					Amount:      150,
					Description: "3 hours detention at delivery",
					Approved:    true,
				},
			},
			TotalAmount: 2600,
			CreatedAt:   "2026-08-21T14:00:00Z",
			UpdatedAt:   "2026-08-21T14:00:00Z",
		},
	})
}
