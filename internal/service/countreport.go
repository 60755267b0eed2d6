package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

// reimbursableCodes is the fixed set of finance codes covered by the
// food-and-freight reimbursement; everything else is an "other cost".
var reimbursableCodes = map[string]bool{
	"food":    true,
	"freight": true,
}

// CountReportService aggregates a physical-count session into per-finance-code
// summaries and renders them as GL CSV, fixed-width text, or structured data.
// Every monetary value is integer cents; dollar floats never appear.
type CountReportService struct {
	repo repository.CountRepository
}

// NewCountReportService creates a count report service.
func NewCountReportService(repo repository.CountRepository) *CountReportService {
	return &CountReportService{repo: repo}
}

// Generate builds the structured report for a count session. Returns
// (nil, nil) when the session id is unknown.
func (s *CountReportService) Generate(ctx context.Context, sessionID string) (*model.CountReport, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	lines, err := s.repo.ListLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.repo.ListInvoices(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.repo.ListExceptions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*model.FinanceCodeSummary)
	var codes []string
	for _, line := range lines {
		summary, ok := byCode[line.FinanceCode]
		if !ok {
			summary = &model.FinanceCodeSummary{
				Code:         line.FinanceCode,
				Reimbursable: reimbursableCodes[line.FinanceCode],
			}
			byCode[line.FinanceCode] = summary
			codes = append(codes, line.FinanceCode)
		}
		summary.ExpectedQty += line.ExpectedQty
		summary.CountedQty += line.CountedQty
		// Cents values are qty x unit cost, rounded to whole cents per line
		// the way the GL expects, then summed as integers.
		summary.ExpectedCents += centsValue(line.ExpectedQty, line.UnitCostCents)
		summary.CountedCents += centsValue(line.CountedQty, line.UnitCostCents)
	}
	sort.Strings(codes)

	report := &model.CountReport{
		Session:    *session,
		Exceptions: exceptions,
	}
	for _, code := range codes {
		summary := byCode[code]
		summary.VarianceQty = summary.CountedQty - summary.ExpectedQty
		summary.VarianceCents = summary.CountedCents - summary.ExpectedCents
		if summary.Reimbursable {
			report.ReimbursableCents += summary.CountedCents
		} else {
			report.OtherCents += summary.CountedCents
		}
		report.Codes = append(report.Codes, *summary)
	}

	for _, inv := range invoices {
		report.GSTCents += inv.GSTCents
		report.PSTCents += inv.PSTCents
	}

	return report, nil
}

// centsValue converts a quantity at a unit cost into integer cents.
func centsValue(qty float64, unitCostCents int64) int64 {
	return int64(math.Round(qty * float64(unitCostCents)))
}

// RenderGLCSV renders the report as a GL-style CSV.
func (s *CountReportService) RenderGLCSV(report *model.CountReport) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"financeCode", "expectedQty", "countedQty", "varianceQty", "expectedValue", "countedValue", "varianceValue", "reimbursable"}); err != nil {
		return "", err
	}

	for _, c := range report.Codes {
		record := []string{
			c.Code,
			formatQty(c.ExpectedQty),
			formatQty(c.CountedQty),
			formatQty(c.VarianceQty),
			FormatCents(c.ExpectedCents),
			FormatCents(c.CountedCents),
			FormatCents(c.VarianceCents),
			strconv.FormatBool(c.Reimbursable),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const reportWidth = 72

// RenderText renders the report as a fixed-width plain-text document.
func (s *CountReportService) RenderText(report *model.CountReport) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", reportWidth) + "\n")
	sb.WriteString(padRight("COUNT REPORT  "+report.Session.ID, reportWidth) + "\n")
	sb.WriteString(padRight("Site: "+report.Session.Site, 36))
	sb.WriteString(padLeft("Counted by: "+report.Session.CountedBy, reportWidth-36) + "\n")
	sb.WriteString(strings.Repeat("-", reportWidth) + "\n")

	sb.WriteString(padRight("CODE", 12))
	sb.WriteString(padLeft("EXPECTED", 14))
	sb.WriteString(padLeft("COUNTED", 14))
	sb.WriteString(padLeft("VARIANCE", 14))
	sb.WriteString(padLeft("VALUE", 18) + "\n")

	for _, c := range report.Codes {
		sb.WriteString(padRight(c.Code, 12))
		sb.WriteString(padLeft(formatQty(c.ExpectedQty), 14))
		sb.WriteString(padLeft(formatQty(c.CountedQty), 14))
		sb.WriteString(padLeft(formatQty(c.VarianceQty), 14))
		sb.WriteString(padLeft(FormatCents(c.VarianceCents), 18) + "\n")
	}

	sb.WriteString(strings.Repeat("-", reportWidth) + "\n")
	sb.WriteString(padRight("Food + freight (reimbursable)", 40))
	sb.WriteString(padLeft(FormatCents(report.ReimbursableCents), reportWidth-40) + "\n")
	sb.WriteString(padRight("Other costs", 40))
	sb.WriteString(padLeft(FormatCents(report.OtherCents), reportWidth-40) + "\n")
	sb.WriteString(padRight("GST", 40))
	sb.WriteString(padLeft(FormatCents(report.GSTCents), reportWidth-40) + "\n")
	sb.WriteString(padRight("PST", 40))
	sb.WriteString(padLeft(FormatCents(report.PSTCents), reportWidth-40) + "\n")

	if len(report.Exceptions) > 0 {
		sb.WriteString(strings.Repeat("-", reportWidth) + "\n")
		sb.WriteString(fmt.Sprintf("UNRESOLVED ITEM MAPPINGS (%d)\n", len(report.Exceptions)))
		for _, exc := range report.Exceptions {
			sb.WriteString("  " + padRight(exc.ItemCode, 16) + exc.Reason + "\n")
		}
	}

	sb.WriteString(strings.Repeat("=", reportWidth) + "\n")
	return sb.String()
}

// FormatCents renders integer cents as a dollar string, e.g. 12345 -> "123.45".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// padRight pads s with spaces on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
