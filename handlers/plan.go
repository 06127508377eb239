package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Austinjohnson7039/saffar/database"
	"github.com/Austinjohnson7039/saffar/planner"
	"github.com/Austinjohnson7039/saffar/services"
)

type PlanRequest struct {
	Destination  string  `json:"destination" binding:"required"`
	CheckInDate  string  `json:"check_in_date" binding:"required"`
	CheckOutDate string  `json:"check_out_date" binding:"required"`
	Guests       int     `json:"guests"`
	Budget       float64 `json:"budget"`
}

type PlanResponse struct {
	PlanID    string          `json:"plan_id"`
	Catalog   planner.Catalog `json:"catalog"`
	AISummary string          `json:"ai_summary"`
	Source    string          `json:"source"` // "ai" or "estimated"
}

func (h *Handler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)

	if req.Guests <= 0 {
		req.Guests = 2
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in date format. Use YYYY-MM-DD"})
		return
	}

	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-out date format. Use YYYY-MM-DD"})
		return
	}

	trip, err := planner.NewTrip(req.Destination, checkIn, checkOut, req.Guests)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog := services.BuildCatalog(req.Destination)

	// ── AI summary, with deterministic fallback ───────────────────────────────
	source := "ai"
	var summary string

	aiClient := services.GetAIClient()
	if aiClient != nil {
		summary, err = aiClient.TripSummary(req.Destination, req.CheckInDate, req.CheckOutDate, req.Guests, req.Budget, catalog)
		if err != nil {
			log.Printf("⚠️  AI summary failed: %v — using fallback", err)
			summary = ""
		}
	}
	if summary == "" {
		summary = services.FallbackSummary(req.Destination, trip.Nights(), req.Guests, req.Budget, catalog)
		source = "estimated"
	}

	plan := &database.Plan{
		ID:           uuid.New().String(),
		Destination:  req.Destination,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
		Budget:       req.Budget,
		Catalog:      catalog,
		AISummary:    summary,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.SavePlan(plan); err != nil {
		log.Printf("❌ Failed to save plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}

	log.Printf("✅ Plan %s created for %s (%d guests)", plan.ID, plan.Destination, plan.Guests)

	c.JSON(http.StatusOK, PlanResponse{
		PlanID:    plan.ID,
		Catalog:   catalog,
		AISummary: summary,
		Source:    source,
	})
}

func (h *Handler) GetPlan(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"plan":  plan,
		"cost":  planner.Cost(&plan.Selection, trip),
		"ready": plan.Selection.Ready(),
	})
}

// tripFromPlan rebuilds the validated trip from a stored plan's dates.
func tripFromPlan(plan *database.Plan) (planner.Trip, error) {
	checkIn, err := time.Parse("2006-01-02", plan.CheckInDate)
	if err != nil {
		return planner.Trip{}, err
	}
	checkOut, err := time.Parse("2006-01-02", plan.CheckOutDate)
	if err != nil {
		return planner.Trip{}, err
	}
	return planner.NewTrip(plan.Destination, checkIn, checkOut, plan.Guests)
}
