// Package service contains the menu planning business logic: quantity
// scaling, cycle date arithmetic, the recipe catalog, shopping list
// aggregation and count reporting.
package service

import (
	"math"
	"strings"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/logger"
	"github.com/guttosm/menu-service/internal/metrics"
)

// conversionFactors holds the supported unit conversions: mass (g<->kg) and
// volume (ml<->L). Keys are lowercase.
var conversionFactors = map[string]map[string]float64{
	"g":  {"kg": 0.001},
	"kg": {"g": 1000},
	"ml": {"l": 0.001},
	"l":  {"ml": 1000},
}

// roundEpsilon absorbs float64 noise before ceiling operations so that an
// exact value like 16.0 does not round up to 16.1.
const roundEpsilon = 1e-9

// Quantizer defines unit conversion, operational rounding and headcount
// scaling operations.
type Quantizer interface {
	ConvertUnit(qty float64, fromUnit, toUnit string) float64
	RoundToOperational(qty float64, unit string) float64
	CalculateQuantity(portion model.BasePortion, headcount int) model.CalculatedLine
	ScaleRecipe(recipe model.Recipe, headcount int) []model.CalculatedLine
	AggregateQuantities(lines []model.CalculatedLine) []model.AggregatedLine
}

// QuantizerService implements Quantizer. It is stateless; every method is a
// pure function of its arguments.
type QuantizerService struct{}

// NewQuantizerService creates a new QuantizerService.
func NewQuantizerService() *QuantizerService {
	return &QuantizerService{}
}

// ConvertUnit converts qty between mass units (g, kg) or volume units (ml, L).
// Units are matched case-insensitively. Identical units return the input
// unchanged. An unsupported pair (e.g. mass to volume) also returns the input
// unchanged: planning must not crash on a mis-tagged portion, so the mismatch
// is logged and counted instead.
func (q *QuantizerService) ConvertUnit(qty float64, fromUnit, toUnit string) float64 {
	from := strings.ToLower(strings.TrimSpace(fromUnit))
	to := strings.ToLower(strings.TrimSpace(toUnit))

	if from == to {
		return qty
	}

	if factors, ok := conversionFactors[from]; ok {
		if factor, ok := factors[to]; ok {
			return qty * factor
		}
	}

	log := logger.Logger()
	log.Warn().
		Str("from_unit", fromUnit).
		Str("to_unit", toUnit).
		Float64("qty", qty).
		Msg("Incompatible unit conversion, returning quantity unconverted")
	metrics.RecordUnitConversionFallback()

	return qty
}

// RoundToOperational rounds a quantity up to an amount the kitchen can
// actually order. Under-ordering is worse than over-ordering, so every branch
// except the fallback ceils:
//
//	kg             -> ceiling to the nearest 0.1
//	L              -> ceiling to the nearest 0.5
//	each/unit/pcs  -> ceiling to the nearest whole number
//	anything else  -> round-half-up to 2 decimal places
func (q *QuantizerService) RoundToOperational(qty float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg":
		return math.Ceil(qty*10-roundEpsilon) / 10
	case "l":
		return math.Ceil(qty*2-roundEpsilon) / 2
	case "each", "unit", "pcs":
		return math.Ceil(qty - roundEpsilon)
	default:
		return math.Floor(qty*100+0.5) / 100
	}
}

// CalculateQuantity scales one base portion to the given headcount.
//
// The raw quantity is basePerPerson x headcount in the portion's native unit.
// Raw grams of 1000 or more promote to kg before rounding; raw millilitres
// promote to L at the same threshold. When a pack size is present, the pack
// count is the rounded issue quantity expressed in the pack's unit, divided
// by the pack quantity and ceiled: a partial pack is a whole pack.
func (q *QuantizerService) CalculateQuantity(portion model.BasePortion, headcount int) model.CalculatedLine {
	rawQty := portion.BasePerPerson * float64(headcount)
	rawUnit := portion.Unit

	issueQty := rawQty
	issueUnit := rawUnit
	switch strings.ToLower(strings.TrimSpace(rawUnit)) {
	case "g":
		if rawQty >= 1000 {
			issueQty = rawQty / 1000
			issueUnit = "kg"
		}
	case "ml":
		if rawQty >= 1000 {
			issueQty = rawQty / 1000
			issueUnit = "L"
		}
	}

	issueQty = q.RoundToOperational(issueQty, issueUnit)

	var packCount *int
	if portion.PackSize != nil && portion.PackSize.Qty > 0 {
		qtyInPackUnit := q.ConvertUnit(issueQty, issueUnit, portion.PackSize.Unit)
		packs := int(math.Ceil(qtyInPackUnit/portion.PackSize.Qty - roundEpsilon))
		packCount = &packs
	}

	return model.CalculatedLine{
		ItemCode:    portion.ItemCode,
		Description: portion.Description,
		RawQty:      rawQty,
		RawUnit:     rawUnit,
		IssueQty:    issueQty,
		IssueUnit:   issueUnit,
		PackCount:   packCount,
		PackSize:    portion.PackSize,
		Resolution:  model.ResolutionOK,
	}
}

// ScaleRecipe produces one calculated line per base portion of the recipe.
func (q *QuantizerService) ScaleRecipe(recipe model.Recipe, headcount int) []model.CalculatedLine {
	lines := make([]model.CalculatedLine, 0, len(recipe.BasePortions))
	for _, portion := range recipe.BasePortions {
		lines = append(lines, q.CalculateQuantity(portion, headcount))
	}
	return lines
}

// AggregateQuantities merges calculated lines sharing an item code into one
// aggregated line each, ordered by first appearance.
//
// The summed issue quantity is re-rounded after summation, and the pack count
// is recomputed from that rounded total. Summing already-rounded per-line
// pack counts would overstate the requirement when several recipes each round
// a partial pack up independently.
func (q *QuantizerService) AggregateQuantities(lines []model.CalculatedLine) []model.AggregatedLine {
	order := make([]string, 0, len(lines))
	byCode := make(map[string]*model.AggregatedLine, len(lines))

	for _, line := range lines {
		agg, ok := byCode[line.ItemCode]
		if !ok {
			agg = &model.AggregatedLine{
				ItemCode:    line.ItemCode,
				Description: line.Description,
				Unit:        line.IssueUnit,
				PackSize:    line.PackSize,
			}
			byCode[line.ItemCode] = agg
			order = append(order, line.ItemCode)
		}
		agg.TotalIssueQty += q.ConvertUnit(line.IssueQty, line.IssueUnit, agg.Unit)
	}

	result := make([]model.AggregatedLine, 0, len(order))
	for _, code := range order {
		agg := byCode[code]
		agg.TotalIssueQty = q.RoundToOperational(agg.TotalIssueQty, agg.Unit)

		if agg.PackSize != nil && agg.PackSize.Qty > 0 {
			qtyInPackUnit := q.ConvertUnit(agg.TotalIssueQty, agg.Unit, agg.PackSize.Unit)
			packs := int(math.Ceil(qtyInPackUnit/agg.PackSize.Qty - roundEpsilon))
			agg.TotalPacks = &packs
		}

		result = append(result, *agg)
	}
	return result
}
