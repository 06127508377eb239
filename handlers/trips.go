package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTrips(c *gin.Context) {
	status := c.Query("status")
	query := c.Query("q")

	trips, err := h.store.ListTrips(status, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trips": trips,
		"count": len(trips),
	})
}
