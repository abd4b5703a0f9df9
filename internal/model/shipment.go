// Package model defines the domain types exchanged with the shipment API.
package model

// Shipment represents a single shipment record as returned by the API.
// The wire format uses the Arabic column names of the source spreadsheets;
// field tags mirror them exactly so pages can round-trip rows untouched.
type Shipment struct {
	Code        string  `json:"الكود"`
	Date        string  `json:"التاريخ"`
	Client      string  `json:"العميل"`
	Recipient   string  `json:"المستلم"`
	City        string  `json:"مدينة المستلم"`
	Description string  `json:"الوصف"`
	Status      string  `json:"الحالة"`
	PriceType   string  `json:"نوع السعر"`
	Amount      float64 `json:"قيمة الطرد"`
	Weight      float64 `json:"الوزن"`

	// DeletedAt is only populated on rows from the recycle bin listing.
	DeletedAt string `json:"تاريخ الحذف,omitempty"`
}

// ShipmentPatch is a partial update for a shipment. Only non-nil fields are
// sent; an absent field means "leave unchanged", never "clear".
type ShipmentPatch struct {
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// IsZero reports whether the patch carries no changes at all.
func (p ShipmentPatch) IsZero() bool {
	return p.Amount == nil && p.Description == nil
}
