package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EmergencyContact holds one country's emergency numbers plus its tourist
// helpline.
type EmergencyContact struct {
	Country string `json:"country"`
	Police  string `json:"police"`
	Fire    string `json:"fire"`
	Medical string `json:"medical"`
	Tourist string `json:"tourist_helpline"`
}

var emergencyContacts = []EmergencyContact{
	{Country: "Japan", Police: "110", Fire: "119", Medical: "119", Tourist: "+81-3-3201-3331"},
	{Country: "Spain", Police: "112", Fire: "112", Medical: "112", Tourist: "+34-902-102-112"},
	{Country: "USA", Police: "911", Fire: "911", Medical: "911", Tourist: "1-888-407-4747"},
	{Country: "India", Police: "100", Fire: "101", Medical: "102", Tourist: "1363"},
}

func (h *Handler) EmergencyAll(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": emergencyContacts})
}

func (h *Handler) EmergencyCountry(c *gin.Context) {
	want := strings.ToLower(c.Param("country"))
	for _, contact := range emergencyContacts {
		if strings.ToLower(contact.Country) == want {
			c.JSON(http.StatusOK, contact)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "No emergency information for this country"})
}
