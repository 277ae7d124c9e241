package models

import (
	"strconv"
	"strings"
	"time"
)

// Sale status values. Pending is the only valid creation state; Completed and
// Cancelled are terminal for reporting purposes. Unknown strings are passed
// through rather than rejected (garbage-in/garbage-out by contract).
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Payment type values recorded by the seller.
const (
	PaymentTypeDeposit   = "Pago Anticipo"
	PaymentTypeNoDeposit = "No Pago Anticipo"
)

// Sale is a single seller-submitted sale record. It is never deleted, only
// status-transitioned by an administrator. Amount and TotalAmount are kept as
// the raw strings entered in the form and parsed lossily at aggregation time.
type Sale struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"` // calendar date, "YYYY-MM-DD", no timezone
	City               string    `json:"city"`
	Quantity           int       `json:"quantity"` // pax count
	Amount             string    `json:"amount"`   // seller-recorded balance due
	TotalAmount        string    `json:"totalAmount,omitempty"` // admin-reconciled total, supersedes Amount when set
	SellerEmail        string    `json:"sellerEmail"`
	SellerID           string    `json:"sellerId"`
	ReferredBy         string    `json:"referredBy,omitempty"`
	PaymentType        string    `json:"paymentType,omitempty"`
	PaymentMethod      string    `json:"paymentMethod,omitempty"`      // seller-recorded
	AdminPaymentMethod string    `json:"adminPaymentMethod,omitempty"` // admin-recorded, independent field
	Status             string    `json:"status"`
	Folio              string    `json:"folio,omitempty"`
	WristbandColor     string    `json:"wristbandColor,omitempty"`
	EntryTime          string    `json:"entryTime,omitempty"`
	PackageType        string    `json:"packageType,omitempty"`
	Observation        string    `json:"observation,omitempty"`
	PaymentProofURL    string    `json:"paymentProofUrl,omitempty"`
	ReservationFor     string    `json:"reservationFor,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ParseAmount converts a seller/admin-entered amount string to a float.
// Unparseable or blank values coerce to 0. This is a deliberate lossy policy:
// aggregation stays total instead of failing on one bad record.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseQuantity converts a pax-count string to a non-negative int, coercing
// invalid input to 0 under the same lossy policy as ParseAmount.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// EffectiveAmount returns the amount used for financial aggregation: the
// admin-reconciled total when present, the seller balance otherwise.
func (s *Sale) EffectiveAmount() float64 {
	if strings.TrimSpace(s.TotalAmount) != "" {
		return ParseAmount(s.TotalAmount)
	}
	return ParseAmount(s.Amount)
}

// DepositPaid reports whether the sale was marked deposit-paid by the seller.
func (s *Sale) DepositPaid() bool {
	return s.PaymentType == PaymentTypeDeposit
}

// CreateSaleRequest is the seller submission body. Seller identity and status
// are stamped server-side, never taken from the client.
type CreateSaleRequest struct {
	Date           string `json:"date"`
	City           string `json:"city"`
	Quantity       int    `json:"quantity"`
	Amount         string `json:"amount"`
	ReferredBy     string `json:"referredBy"`
	PaymentType    string `json:"paymentType"`
	PaymentMethod  string `json:"paymentMethod"`
	ReservationFor string `json:"reservationFor"`
}

// ReviewSaleRequest is the administrator reconciliation body. Numeric fields
// arrive as strings and are reparsed with 0-on-failure coercion.
type ReviewSaleRequest struct {
	Status             string `json:"status"`
	EntryTime          string `json:"entryTime"`
	AdminPaymentMethod string `json:"adminPaymentMethod"`
	PackageType        string `json:"packageType"`
	Folio              string `json:"folio"`
	WristbandColor     string `json:"wristbandColor"`
	PaymentProofURL    string `json:"paymentProofUrl"`
	Quantity           string `json:"quantity"`
	TotalAmount        string `json:"totalAmount"`
	Observation        string `json:"observation"`
}

// SalePatch is the partial update handed to the store gateway. Nil pointers
// mean "leave untouched".
type SalePatch struct {
	Status             *string
	EntryTime          *string
	AdminPaymentMethod *string
	PackageType        *string
	Folio              *string
	WristbandColor     *string
	PaymentProofURL    *string
	Quantity           *int
	TotalAmount        *string
	Observation        *string
}

// IsIdentity reports whether the patch changes nothing.
func (p *SalePatch) IsIdentity() bool {
	return p.Status == nil && p.EntryTime == nil && p.AdminPaymentMethod == nil &&
		p.PackageType == nil && p.Folio == nil && p.WristbandColor == nil &&
		p.PaymentProofURL == nil && p.Quantity == nil && p.TotalAmount == nil &&
		p.Observation == nil
}

// NewSalePatch builds the mutation patch for an administrative review.
//
// Cancelling touches only status and observation: administrative fields
// entered before the cancellation persist, since terminal records double as
// the audit trail of what the admin already verified. Any other status writes
// the full reconciliation field set and clears the observation.
func NewSalePatch(req ReviewSaleRequest) SalePatch {
	status := req.Status
	if status == StatusCancelled {
		obs := req.Observation
		return SalePatch{
			Status:      &status,
			Observation: &obs,
		}
	}

	qty := ParseQuantity(req.Quantity)
	total := strings.TrimSpace(req.TotalAmount)
	if _, err := strconv.ParseFloat(total, 64); err != nil {
		total = "0"
	}
	empty := ""
	return SalePatch{
		Status:             &status,
		EntryTime:          &req.EntryTime,
		AdminPaymentMethod: &req.AdminPaymentMethod,
		PackageType:        &req.PackageType,
		Folio:              &req.Folio,
		WristbandColor:     &req.WristbandColor,
		PaymentProofURL:    &req.PaymentProofURL,
		Quantity:           &qty,
		TotalAmount:        &total,
		Observation:        &empty,
	}
}

// Apply copies the patch onto a sale in memory. The repository mirrors this
// when building the UPDATE statement; Apply exists so cached copies and hub
// snapshots stay consistent without a re-fetch.
func (p *SalePatch) Apply(s *Sale) {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.EntryTime != nil {
		s.EntryTime = *p.EntryTime
	}
	if p.AdminPaymentMethod != nil {
		s.AdminPaymentMethod = *p.AdminPaymentMethod
	}
	if p.PackageType != nil {
		s.PackageType = *p.PackageType
	}
	if p.Folio != nil {
		s.Folio = *p.Folio
	}
	if p.WristbandColor != nil {
		s.WristbandColor = *p.WristbandColor
	}
	if p.PaymentProofURL != nil {
		s.PaymentProofURL = *p.PaymentProofURL
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.TotalAmount != nil {
		s.TotalAmount = *p.TotalAmount
	}
	if p.Observation != nil {
		s.Observation = *p.Observation
	}
}
