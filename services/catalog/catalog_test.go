package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebook/models"
)

func TestEveryServiceHasVendorPair(t *testing.T) {
	for _, s := range ListServices() {
		t.Run(s.ID, func(t *testing.T) {
			_, ok := vendors[s.ID]
			require.True(t, ok, "missing vendor pair")

			pair := VendorsFor(s.ID)
			assert.Equal(t, models.CategoryBest, pair.Best.Category)
			assert.Equal(t, models.CategoryFastest, pair.Fastest.Category)
			assert.Positive(t, pair.Best.PriceUSD)
			assert.Positive(t, pair.Fastest.PriceUSD)
			assert.NotEmpty(t, s.Questions)
			assert.Positive(t, s.MaxVendors)
		})
	}
}

func TestUnknownServiceFallsBack(t *testing.T) {
	s, found := GetService("zeppelin_repair")
	assert.False(t, found)
	assert.Equal(t, "general", s.ID)
	assert.Equal(t, defaultService.Questions, QuestionsFor("zeppelin_repair"))
	assert.Equal(t, DefaultMaxVendors, MaxVendorsFor("zeppelin_repair"))
	assert.Equal(t, defaultVendors, VendorsFor("zeppelin_repair"))
}

func TestPlumberCatalog(t *testing.T) {
	s, found := GetService("plumber")
	require.True(t, found)
	assert.Equal(t, 14, MaxVendorsFor("plumber"))
	assert.Len(t, s.Questions, 3)
}

func TestListServicesSorted(t *testing.T) {
	list := ListServices()
	require.Len(t, list, len(services))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
