package feria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

func aggregated() []model.AggregatedMarket {
	return []model.AggregatedMarket{
		{
			MarketRecord: rec("Feria Centro", "centro", 10, 20),
			Days:         []string{model.Monday, model.Wednesday},
		},
		{
			MarketRecord: rec("Feria Pocitos", "pocitos", 11, 21),
			Days:         []string{model.Friday},
		},
		{
			MarketRecord: rec("Feria Prado", "prado", 12, 22),
			Days:         []string{model.Friday},
		},
	}
}

func TestApply_DayAndAllNeighborhood(t *testing.T) {
	out := Apply(aggregated(), Criteria{Day: model.Monday, Neighborhood: model.FilterAll})

	require.Len(t, out, 1)
	assert.Equal(t, "Feria Centro", out[0].Name)
}

func TestApply_DayExcludesNonMatching(t *testing.T) {
	out := Apply(aggregated(), Criteria{Day: model.Tuesday, Neighborhood: model.FilterAll})
	assert.Empty(t, out)
}

func TestApply_DayAndNeighborhoodIntersect(t *testing.T) {
	// Day matches but neighborhood doesn't.
	out := Apply(aggregated(), Criteria{Day: model.Monday, Neighborhood: "pocitos"})
	assert.Empty(t, out)

	out = Apply(aggregated(), Criteria{Day: model.Friday, Neighborhood: "pocitos"})
	require.Len(t, out, 1)
	assert.Equal(t, "Feria Pocitos", out[0].Name)
}

func TestApply_SharedDayAllNeighborhoodsReturnsBoth(t *testing.T) {
	out := Apply(aggregated(), Criteria{Day: model.Friday, Neighborhood: model.FilterAll})

	require.Len(t, out, 2)
	assert.Equal(t, "Feria Pocitos", out[0].Name)
	assert.Equal(t, "Feria Prado", out[1].Name)
}

func TestApply_AllDayMatchesNothing(t *testing.T) {
	// Day sets only ever contain real weekday identifiers, so the "all"
	// sentinel never matches on the day side. Established behavior; keep it.
	out := Apply(aggregated(), DefaultCriteria())
	assert.Empty(t, out)

	out = Apply(aggregated(), Criteria{Day: model.FilterAll, Neighborhood: "centro"})
	assert.Empty(t, out)
}

func TestApply_NeighborhoodIsCaseSensitive(t *testing.T) {
	out := Apply(aggregated(), Criteria{Day: model.Friday, Neighborhood: "Pocitos"})
	assert.Empty(t, out)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := aggregated()
	_ = Apply(in, Criteria{Day: model.Friday, Neighborhood: model.FilterAll})

	require.Len(t, in, 3)
	assert.Equal(t, "Feria Centro", in[0].Name)
}
