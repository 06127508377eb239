package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreatePlanReturnsCuratedCatalog(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/plan", gin.H{
		"destination":    "Delhi",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-13",
		"guests":         2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp PlanResponse
	decode(t, w, &resp)

	if len(resp.Catalog.Accommodations) != 3 {
		t.Fatalf("expected 3 accommodations for Delhi, got %d", len(resp.Catalog.Accommodations))
	}
	if resp.Catalog.Accommodations[0].Name != "The Oberoi" {
		t.Fatalf("expected The Oberoi first, got %q", resp.Catalog.Accommodations[0].Name)
	}
	if resp.AISummary == "" {
		t.Fatal("expected a summary even without an AI client")
	}
	if resp.Source != "estimated" {
		t.Fatalf("expected estimated summary source in tests, got %q", resp.Source)
	}
}

func TestCreatePlanDefaultsGuests(t *testing.T) {
	r := newTestRouter()

	id := func() string {
		w := doJSON(t, r, http.MethodPost, "/api/plan", gin.H{
			"destination":    "Goa",
			"check_in_date":  "2026-09-10",
			"check_out_date": "2026-09-12",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp PlanResponse
		decode(t, w, &resp)
		return resp.PlanID
	}()

	w := doJSON(t, r, http.MethodGet, "/api/plan/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Plan struct {
			Guests int `json:"guests"`
		} `json:"plan"`
	}
	decode(t, w, &resp)
	if resp.Plan.Guests != 2 {
		t.Fatalf("expected guests to default to 2, got %d", resp.Plan.Guests)
	}
}

func TestCreatePlanValidation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing destination", gin.H{
			"check_in_date": "2026-09-10", "check_out_date": "2026-09-13"}},
		{"bad check-in format", gin.H{
			"destination": "Delhi", "check_in_date": "10-09-2026", "check_out_date": "2026-09-13"}},
		{"bad check-out format", gin.H{
			"destination": "Delhi", "check_in_date": "2026-09-10", "check_out_date": "never"}},
		{"check-out before check-in", gin.H{
			"destination": "Delhi", "check_in_date": "2026-09-13", "check_out_date": "2026-09-10"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/plan", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreatePlanAllowsSameDayDates(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/plan", gin.H{
		"destination":    "Delhi",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected same-day dates to be accepted, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetPlanNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/plan/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCreatePlanUnknownDestinationFallsBack(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/plan", gin.H{
		"destination":    "Reykjavik",
		"check_in_date":  "2026-09-10",
		"check_out_date": "2026-09-13",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp PlanResponse
	decode(t, w, &resp)
	if len(resp.Catalog.Accommodations) == 0 {
		t.Fatal("expected a generic catalog for unknown destinations")
	}
	if resp.Catalog.Accommodations[0].Name != "Grand City Hotel" {
		t.Fatalf("expected generic catalog, got %q", resp.Catalog.Accommodations[0].Name)
	}
}
