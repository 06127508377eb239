package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogCuratedCity(t *testing.T) {
	cat := BuildCatalog("Delhi")

	require.NotEmpty(t, cat.Accommodations)
	require.NotEmpty(t, cat.Cuisines)
	require.NotEmpty(t, cat.Transport)

	_, ok := cat.FindAccommodation(1)
	assert.True(t, ok)
	_, ok = cat.FindDish("North Indian", "Dal Bukhara")
	assert.True(t, ok)
	_, ok = cat.FindTransportOption("Smart Cab", "Ola Prime")
	assert.True(t, ok)
}

func TestBuildCatalogIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, BuildCatalog("delhi"), BuildCatalog("  DELHI "))
}

func TestBuildCatalogGenericFallback(t *testing.T) {
	cat := BuildCatalog("Reykjavik")

	require.NotEmpty(t, cat.Accommodations)
	require.NotEmpty(t, cat.Cuisines)
	require.NotEmpty(t, cat.Transport)

	found := false
	for _, cu := range cat.Cuisines {
		for _, r := range cu.Restaurants {
			if strings.Contains(r.Reason, "Reykjavik") {
				found = true
			}
		}
	}
	assert.True(t, found, "generic catalog should mention the destination")
}

func TestCatalogPricesAndIDs(t *testing.T) {
	for _, dest := range []string{"delhi", "goa", "jaipur", "somewhere else"} {
		cat := BuildCatalog(dest)

		seen := make(map[int]bool)
		for _, a := range cat.Accommodations {
			assert.GreaterOrEqual(t, a.Price, 0.0, "%s: %s", dest, a.Name)
			assert.False(t, seen[a.ID], "%s: duplicate accommodation id %d", dest, a.ID)
			seen[a.ID] = true
		}
		for _, cu := range cat.Cuisines {
			for _, r := range cu.Restaurants {
				assert.GreaterOrEqual(t, r.Price, 0.0, "%s: %s", dest, r.Dish)
			}
		}
		for _, m := range cat.Transport {
			for _, o := range m.Options {
				assert.GreaterOrEqual(t, o.Price, 0.0, "%s: %s", dest, o.Name)
			}
		}
	}
}
