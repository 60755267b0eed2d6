package model

import "time"

// All monetary values in count reporting are integer cents. Floating-point
// dollars are never used, so repeated aggregation cannot drift.

// CountSession is the header of a physical stock count.
type CountSession struct {
	ID        string    `json:"id" bson:"_id"`
	Site      string    `json:"site" bson:"site"`
	CountedBy string    `json:"counted_by" bson:"counted_by"`
	StartedAt time.Time `json:"started_at" bson:"started_at"`
	ClosedAt  time.Time `json:"closed_at,omitempty" bson:"closed_at,omitempty"`
	Status    string    `json:"status" bson:"status"`
}

// CountLine is a single counted item within a session.
type CountLine struct {
	SessionID     string  `json:"session_id" bson:"session_id"`
	ItemCode      string  `json:"item_code" bson:"item_code"`
	Description   string  `json:"description" bson:"description"`
	FinanceCode   string  `json:"finance_code" bson:"finance_code"`
	ExpectedQty   float64 `json:"expected_qty" bson:"expected_qty"`
	CountedQty    float64 `json:"counted_qty" bson:"counted_qty"`
	UnitCostCents int64   `json:"unit_cost_cents" bson:"unit_cost_cents"`
}

// Invoice is a supplier invoice attached to a count session.
type Invoice struct {
	SessionID     string `json:"session_id" bson:"session_id"`
	Number        string `json:"number" bson:"number"`
	Supplier      string `json:"supplier" bson:"supplier"`
	SubtotalCents int64  `json:"subtotal_cents" bson:"subtotal_cents"`
	GSTCents      int64  `json:"gst_cents" bson:"gst_cents"`
	PSTCents      int64  `json:"pst_cents" bson:"pst_cents"`
}

// MappingException records a count line whose item code could not be
// resolved against the inventory catalog.
type MappingException struct {
	SessionID string `json:"session_id" bson:"session_id"`
	ItemCode  string `json:"item_code" bson:"item_code"`
	Reason    string `json:"reason" bson:"reason"`
}

// FinanceCodeSummary aggregates a session's lines for one finance code.
type FinanceCodeSummary struct {
	Code          string  `json:"code"`
	ExpectedQty   float64 `json:"expected_qty"`
	CountedQty    float64 `json:"counted_qty"`
	VarianceQty   float64 `json:"variance_qty"`
	ExpectedCents int64   `json:"expected_cents"`
	CountedCents  int64   `json:"counted_cents"`
	VarianceCents int64   `json:"variance_cents"`
	Reimbursable  bool    `json:"reimbursable"`
}

// CountReport is the structured aggregate for one count session. The CSV and
// text renderings are projections of this object.
type CountReport struct {
	Session           CountSession         `json:"session"`
	Codes             []FinanceCodeSummary `json:"codes"`
	ReimbursableCents int64                `json:"reimbursable_cents"`
	OtherCents        int64                `json:"other_cents"`
	GSTCents          int64                `json:"gst_cents"`
	PSTCents          int64                `json:"pst_cents"`
	Exceptions        []MappingException   `json:"exceptions"`
}
