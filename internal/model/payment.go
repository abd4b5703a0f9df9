package model

import "github.com/shopspring/decimal"

// PaymentRecord is one row of an uploaded payment reconciliation file. It
// shares the shipment columns; payment-specific aggregates arrive separately
// as PaymentTotals.
type PaymentRecord struct {
	Code      string  `json:"الكود"`
	Date      string  `json:"التاريخ"`
	Client    string  `json:"العميل"`
	Recipient string  `json:"المستلم"`
	City      string  `json:"مدينة المستلم"`
	Status    string  `json:"الحالة"`
	PriceType string  `json:"نوع السعر"`
	Amount    float64 `json:"قيمة الطرد"`
}

// PaymentTotals holds the five aggregates the server computes over the FULL
// filtered record set of a payment file, not just the visible page. They are
// money values and must be displayed exactly as received, so they decode into
// decimals rather than floats.
type PaymentTotals struct {
	DeliveryValue   decimal.Decimal `json:"delivery_value"`
	DueFees         decimal.Decimal `json:"due_fees"`
	NetPackagePrice decimal.Decimal `json:"net_package_price"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	NetDue          decimal.Decimal `json:"net_due"`
}
