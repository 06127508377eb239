package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Austinjohnson7039/saffar/database"
	"github.com/Austinjohnson7039/saffar/planner"
	"github.com/Austinjohnson7039/saffar/services"
)

type BookingRequest struct {
	TravelerName string `json:"traveler_name"`
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	// Body is optional; traveler name defaults below.
	_ = c.ShouldBindJSON(&req)
	if req.TravelerName == "" {
		req.TravelerName = "Guest Traveler"
	}

	plan, err := h.store.GetPlan(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	trip, err := tripFromPlan(plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored plan has invalid dates"})
		return
	}

	record, err := planner.AssembleBooking(&plan.Selection, trip)
	if errors.Is(err, planner.ErrIncompleteSelection) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble booking"})
		return
	}

	pdfData, err := services.BookingConfirmationPDF(services.ConfirmationData{
		TravelerName: req.TravelerName,
		Record:       record,
	})
	if err != nil {
		log.Printf("⚠️  PDF generation failed for plan %s: %v", plan.ID, err)
		// The booking still stands; download returns 404 until a PDF exists.
		pdfData = nil
	}

	booking := &database.Booking{
		ID:           record.BookingID,
		PlanID:       plan.ID,
		TravelerName: req.TravelerName,
		Record:       *record,
		PDFData:      pdfData,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.SaveBooking(booking); err != nil {
		log.Printf("❌ Failed to save booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking"})
		return
	}

	// The booked trip joins the traveler's history as upcoming.
	historyTrip := &database.Trip{
		ID:          "trip-" + uuid.New().String(),
		Destination: plan.Destination,
		Dates:       formatDateRange(plan.CheckInDate, plan.CheckOutDate),
		Status:      "upcoming",
		TotalCost:   record.TotalCost,
	}
	if err := h.store.SaveTrip(historyTrip); err != nil {
		log.Printf("⚠️  Failed to record trip history: %v", err)
	}

	log.Printf("✅ Booking %s confirmed for %s (total %.2f)", record.BookingID, plan.Destination, record.TotalCost)

	c.JSON(http.StatusOK, gin.H{
		"booking_id":   record.BookingID,
		"record":       record,
		"download_url": "/api/download/" + record.BookingID,
	})
}

func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.store.GetBooking(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            booking.ID,
		"plan_id":       booking.PlanID,
		"traveler_name": booking.TravelerName,
		"record":        booking.Record,
		"created_at":    booking.CreatedAt,
	})
}

// formatDateRange renders "Sep 10 - Sep 13, 2026" from ISO dates, falling back
// to the raw values if they do not parse.
func formatDateRange(checkIn, checkOut string) string {
	in, err1 := time.Parse("2006-01-02", checkIn)
	out, err2 := time.Parse("2006-01-02", checkOut)
	if err1 != nil || err2 != nil {
		return checkIn + " - " + checkOut
	}
	return fmt.Sprintf("%s - %s", in.Format("Jan 2"), out.Format("Jan 2, 2006"))
}
