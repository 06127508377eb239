package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Austinjohnson7039/saffar/database"
	"github.com/Austinjohnson7039/saffar/expense"
)

// Handler carries the store and the per-plan expense ledgers shared by all
// endpoints.
type Handler struct {
	store   database.Store
	ledgers *expense.Registry
}

func New(store database.Store) *Handler {
	return &Handler{
		store:   store,
		ledgers: expense.NewRegistry(),
	}
}

// Register mounts every route on the /api group.
func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/health", h.Health)

	api.POST("/plan", h.CreatePlan)
	api.GET("/plan/:id", h.GetPlan)
	api.PUT("/plan/:id/selection/accommodation", h.SelectAccommodation)
	api.PUT("/plan/:id/selection/dish", h.SelectDish)
	api.PUT("/plan/:id/selection/transport", h.SelectTransport)

	api.POST("/plan/:id/booking", h.CreateBooking)
	api.GET("/bookings/:id", h.GetBooking)
	api.GET("/download/:id", h.Download)

	api.POST("/plan/:id/expenses", h.AddExpense)
	api.GET("/plan/:id/expenses", h.ListExpenses)

	api.GET("/trips", h.ListTrips)

	api.GET("/emergency", h.EmergencyAll)
	api.GET("/emergency/:country", h.EmergencyCountry)
}

func (h *Handler) Health(c *gin.Context) {
	storeStatus := "ok"
	if err := h.store.Ping(); err != nil {
		storeStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Saffar API",
		"store":   storeStatus,
	})
}
