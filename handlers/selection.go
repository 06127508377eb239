package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Austinjohnson7039/saffar/database"
	"github.com/Austinjohnson7039/saffar/planner"
)

type SelectAccommodationRequest struct {
	AccommodationID int `json:"accommodation_id" binding:"required"`
}

type SelectDishRequest struct {
	CuisineType string `json:"cuisine_type" binding:"required"`
	Dish        string `json:"dish" binding:"required"`
}

type SelectTransportRequest struct {
	TransportType string `json:"transport_type" binding:"required"`
	Option        string `json:"option" binding:"required"`
}

// SelectionResponse is returned after every selection change so the client can
// show the running cost without a second round trip.
type SelectionResponse struct {
	Selection planner.Selection     `json:"selection"`
	Cost      planner.CostBreakdown `json:"cost"`
	Ready     bool                  `json:"ready"`
}

func (h *Handler) SelectAccommodation(c *gin.Context) {
	var req SelectAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.applySelection(c, func(plan *database.Plan) error {
		a, ok := plan.Catalog.FindAccommodation(req.AccommodationID)
		if !ok {
			return errors.New("accommodation not found in this plan's catalog")
		}
		plan.Selection.SelectAccommodation(a)
		return nil
	})
}

func (h *Handler) SelectDish(c *gin.Context) {
	var req SelectDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.applySelection(c, func(plan *database.Plan) error {
		r, ok := plan.Catalog.FindDish(req.CuisineType, req.Dish)
		if !ok {
			return errors.New("dish not found in this plan's catalog")
		}
		plan.Selection.SelectDish(req.CuisineType, r)
		return nil
	})
}

func (h *Handler) SelectTransport(c *gin.Context) {
	var req SelectTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.applySelection(c, func(plan *database.Plan) error {
		o, ok := plan.Catalog.FindTransportOption(req.TransportType, req.Option)
		if !ok {
			return errors.New("transport option not found in this plan's catalog")
		}
		plan.Selection.SelectTransport(req.TransportType, o)
		return nil
	})
}

// applySelection loads the plan, applies one selection mutation, persists it
// and replies with the updated selection, cost and readiness.
func (h *Handler) applySelection(c *gin.Context, mutate func(*database.Plan) error) {
	plan, err := h.store.GetPlan(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	if err := mutate(plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdatePlanSelection(plan.ID, plan.Selection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save selection"})
		return
	}

	trip, err := tripFromPlan(plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored plan has invalid dates"})
		return
	}

	c.JSON(http.StatusOK, SelectionResponse{
		Selection: plan.Selection,
		Cost:      planner.Cost(&plan.Selection, trip),
		Ready:     plan.Selection.Ready(),
	})
}
