package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Austinjohnson7039/saffar/planner"
)

func TestFallbackSummaryIsDeterministic(t *testing.T) {
	cat := BuildCatalog("Delhi")

	a := FallbackSummary("Delhi", 3, 2, 50000, cat)
	b := FallbackSummary("Delhi", 3, 2, 50000, cat)

	assert.Equal(t, a, b)
}

func TestFallbackSummaryPicksBestValue(t *testing.T) {
	cat := BuildCatalog("Delhi")
	s := FallbackSummary("Delhi", 3, 2, 100000, cat)

	// Cheapest stay, top-rated dish, cheapest ride from the Delhi catalog.
	assert.Contains(t, s, "Hotel Comfort Inn")
	assert.Contains(t, s, "Masala Dosa")
	assert.Contains(t, s, "Bus Day Pass")
	assert.Contains(t, s, "fits your 100000 budget")
}

func TestFallbackSummaryFlagsBudgetOverrun(t *testing.T) {
	cat := BuildCatalog("Delhi")
	s := FallbackSummary("Delhi", 3, 2, 100, cat)

	assert.Contains(t, s, "exceeds your 100 budget")
}

func TestFallbackSummaryEmptyCatalog(t *testing.T) {
	s := FallbackSummary("Nowhere", 2, 2, 1000, BuildCatalog("Nowhere"))
	assert.False(t, strings.Contains(s, "Unable"), "generic catalog should still yield picks")

	s = FallbackSummary("Nowhere", 2, 2, 1000, planner.Catalog{})
	assert.Contains(t, s, "Unable to provide recommendations")
}
