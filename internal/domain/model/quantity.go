package model

// ResolutionOK marks a calculated line whose item code resolved cleanly.
// Callers performing inventory-item-code resolution overwrite this field.
const ResolutionOK = "ok"

// CalculatedLine is the result of scaling one base portion to a headcount.
//
// RawQty is the unrounded quantity in RawUnit. IssueQty is the operationally
// rounded quantity in IssueUnit (which may have been promoted, e.g. g to kg).
// PackCount is nil when the portion has no pack size.
type CalculatedLine struct {
	ItemCode    string    `json:"item_code"`
	Description string    `json:"description"`
	RawQty      float64   `json:"raw_qty"`
	RawUnit     string    `json:"raw_unit"`
	IssueQty    float64   `json:"issue_qty"`
	IssueUnit   string    `json:"issue_unit"`
	PackCount   *int      `json:"pack_count"`
	PackSize    *PackSize `json:"pack_size,omitempty"`
	Resolution  string    `json:"resolution"`
}

// AggregatedLine is a shopping-list line: the sum of every calculated line
// sharing an item code, re-rounded after summation. TotalPacks is recomputed
// from the rounded total, never summed from per-line pack counts.
type AggregatedLine struct {
	ItemCode      string    `json:"item_code"`
	Description   string    `json:"description"`
	Unit          string    `json:"unit"`
	TotalIssueQty float64   `json:"total_issue_qty"`
	TotalPacks    *int      `json:"total_packs"`
	PackSize      *PackSize `json:"pack_size,omitempty"`
}
