package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Austinjohnson7039/saffar/planner"
)

// ConfirmationData is everything the booking confirmation PDF needs.
type ConfirmationData struct {
	TravelerName string
	Record       *planner.BookingRecord
}

// BookingConfirmationPDF renders the confirmation and returns raw bytes
// (stored in the database, no filesystem needed).
func BookingConfirmationPDF(data ConfirmationData) ([]byte, error) {
	rec := data.Record

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Saffar", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Curated Trip Booking Confirmation", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Booking ───────────────────────────────────────────────
	sectionHeader("Booking")
	name := data.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Booking ID", rec.BookingID)
	row("Traveler", name)
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", rec.Trip.Destination)
	row("Check-in", fmtDateReadable(rec.Trip.CheckInDate))
	row("Check-out", fmtDateReadable(rec.Trip.CheckOutDate))
	row("Duration", fmt.Sprintf("%d night(s)", rec.Cost.Nights))
	row("Guests", fmt.Sprintf("%d", rec.Trip.Guests))
	pdf.Ln(4)

	// ── Stay ──────────────────────────────────────────────────
	acc := rec.Selection.Accommodation
	sectionHeader("Accommodation")
	row("Hotel", acc.Name)
	row("Category", acc.Type)
	row("Rating", fmt.Sprintf("%.1f / 5.0", acc.Rating))
	row("Price", fmt.Sprintf("%.0f/night x %d night(s) = %.0f",
		acc.Price, rec.Cost.Nights, rec.Cost.Accommodation))
	pdf.Ln(4)

	// ── Dining ────────────────────────────────────────────────
	dish := rec.Selection.Cuisine.Dish
	sectionHeader("Dining")
	row("Cuisine", rec.Selection.Cuisine.Type)
	row("Dish", dish.Dish)
	row("Restaurant", dish.Name)
	row("Price", fmt.Sprintf("%.0f/person x %d guest(s) = %.0f",
		dish.Price, rec.Trip.Guests, rec.Cost.Dining))
	pdf.Ln(4)

	// ── Transport ─────────────────────────────────────────────
	opt := rec.Selection.Transport.Option
	sectionHeader("Transport")
	row("Mode", rec.Selection.Transport.Type)
	row("Option", opt.Name)
	row("Price", fmt.Sprintf("%.0f x 2 (round trip) = %.0f", opt.Price, rec.Cost.Transport))
	pdf.Ln(4)

	// ── Cost Summary ──────────────────────────────────────────
	sectionHeader("Cost Summary")
	row("Accommodation", fmt.Sprintf("%.0f", rec.Cost.Accommodation))
	row("Dining", fmt.Sprintf("%.0f", rec.Cost.Dining))
	row("Transport", fmt.Sprintf("%.0f", rec.Cost.Transport))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("%.0f", rec.TotalCost), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Saffar AI Travel Planner - Payment handled separately by your payment provider",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
