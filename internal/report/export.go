package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// exportData is everything a revenue export carries, fetched in one pass so
// CSV and PDF render from the same snapshot.
type exportData struct {
	Range    Range
	Summary  *Summary
	Daily    []DailyRevenue
	Consoles []ConsoleUsage
	Payments []PaymentBreakdown
}

func (r *repository) collectExport(ctx context.Context, rng Range) (*exportData, error) {
	summary, err := r.GetSummary(ctx, rng)
	if err != nil {
		return nil, err
	}
	daily, err := r.GetDailyRevenue(ctx, rng)
	if err != nil {
		return nil, err
	}
	consoles, err := r.GetConsoleUsage(ctx, rng)
	if err != nil {
		return nil, err
	}
	payments, err := r.GetPaymentBreakdown(ctx, rng)
	if err != nil {
		return nil, err
	}
	return &exportData{
		Range:    rng,
		Summary:  summary,
		Daily:    daily,
		Consoles: consoles,
		Payments: payments,
	}, nil
}

// ExportCSV renders the revenue report as CSV: a summary block followed by
// the per-day rows.
func (r *repository) ExportCSV(ctx context.Context, rng Range) ([]byte, error) {
	data, err := r.collectExport(ctx, rng)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Metric", "Value"},
		{"Total Revenue", fmt.Sprintf("%.2f", data.Summary.TotalRevenue)},
		{"Total Bookings", fmt.Sprint(data.Summary.TotalBookings)},
		{"Total Discount", fmt.Sprintf("%.2f", data.Summary.TotalDiscount)},
		{"Total Hours", fmt.Sprintf("%.2f", data.Summary.TotalHours)},
		{},
		{"Date", "Bookings", "Revenue"},
	}
	for _, day := range data.Daily {
		records = append(records, []string{
			day.Date, fmt.Sprint(day.Bookings), fmt.Sprintf("%.2f", day.Revenue),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the revenue report as a one-page PDF.
func (r *repository) ExportPDF(ctx context.Context, rng Range) ([]byte, error) {
	data, err := r.collectExport(ctx, rng)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Revenue Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if data.Range.From != "" || data.Range.To != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", orAll(data.Range.From), orAll(data.Range.To)))
		pdf.Ln(10)
	} else {
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, "Total Revenue")
	pdf.Cell(0, 6, fmt.Sprintf("%.2f", data.Summary.TotalRevenue))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Total Bookings")
	pdf.Cell(0, 6, fmt.Sprint(data.Summary.TotalBookings))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Total Discount")
	pdf.Cell(0, 6, fmt.Sprintf("%.2f", data.Summary.TotalDiscount))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Revenue by Console")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(60, 6, "Console")
	pdf.Cell(40, 6, "Bookings")
	pdf.Cell(40, 6, "Hours")
	pdf.Cell(0, 6, "Revenue")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	for _, row := range data.Consoles {
		pdf.Cell(60, 6, row.Console)
		pdf.Cell(40, 6, fmt.Sprint(row.Bookings))
		pdf.Cell(40, 6, fmt.Sprintf("%.1f", row.Hours))
		pdf.Cell(0, 6, fmt.Sprintf("%.2f", row.Revenue))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Payment Methods")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, row := range data.Payments {
		pdf.Cell(60, 6, row.Mode)
		pdf.Cell(40, 6, fmt.Sprint(row.Bookings))
		pdf.Cell(0, 6, fmt.Sprintf("%.2f", row.Total))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
