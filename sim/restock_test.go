package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanRestock_VelocityTiers(t *testing.T) {
	// Each case drives recentSales over a full 5-step window so the
	// recent velocity is recentSales/5.
	tests := []struct {
		name        string
		recentSales int
		wantTarget  int
	}{
		{"very fast (1.6/step)", 8, 25},
		{"fast (1.0/step)", 5, 15},
		{"medium (0.6/step)", 3, 8},
		{"slow (0.2/step)", 1, 5},
		{"cold (0/step)", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// maxStock is high enough not to cap the tier
			plan := PlanRestock(0, tt.recentSales, tt.recentSales, 10, 100, 500)
			assert.Equal(t, tt.wantTarget, plan.TargetStock)
		})
	}
}

func TestPlanRestock_SpecScenario(t *testing.T) {
	// GIVEN a book at quantity 1, price 1250, with 4 total sales and 3
	// recent sales at step 10
	plan := PlanRestock(1, 4, 3, 10, 10, 1250)

	// THEN recent velocity 3/5 = 0.6 lands in the 0.5 tier: target 8,
	// needed 7, capped to 6 units, cost 6 × (1250−200) = 6300
	assert.InDelta(t, 0.6, plan.RecentVelocity, 1e-9)
	assert.Equal(t, 8, plan.TargetStock)
	assert.Equal(t, 6, plan.Quantity)
	assert.InDelta(t, 6300.0, plan.Cost, 1e-9)
	assert.InDelta(t, 0.4, plan.TotalVelocity, 1e-9)
}

func TestPlanRestock_ZeroWhenStockMeetsTarget(t *testing.T) {
	// GIVEN a cold seller already holding more than the base target
	plan := PlanRestock(4, 0, 0, 10, 10, 1250)

	// THEN nothing is added and nothing is spent
	assert.Equal(t, 0, plan.Quantity)
	assert.Zero(t, plan.Cost)
}

func TestPlanRestock_MaxStockClampsTarget(t *testing.T) {
	// GIVEN a very fast seller but a ceiling of 10
	plan := PlanRestock(9, 50, 8, 10, 10, 1250)

	// THEN the 25-unit tier is capped at the ceiling and only 1 unit fits
	assert.Equal(t, 10, plan.TargetStock)
	assert.Equal(t, 1, plan.Quantity)
}

func TestPlanRestock_QuantityAboveCeiling_NoNegative(t *testing.T) {
	// GIVEN quantity already above the ceiling (e.g., ceiling lowered mid-run)
	plan := PlanRestock(12, 50, 8, 10, 10, 1250)

	// THEN the plan clamps to zero rather than going negative
	assert.Equal(t, 0, plan.Quantity)
	assert.Zero(t, plan.Cost)
}

func TestPlanRestock_CheapBook_CostFloorsAtZero(t *testing.T) {
	// GIVEN a book priced under the restock discount
	plan := PlanRestock(0, 5, 5, 10, 100, 150)

	// THEN units are still added but the unit cost floors at zero
	assert.Greater(t, plan.Quantity, 0)
	assert.Zero(t, plan.Cost)
}

func TestPlanRestock_EarlySteps_ShortWindow(t *testing.T) {
	// GIVEN 2 recent sales at step 2: the window is min(5, 2) = 2 steps
	plan := PlanRestock(0, 2, 2, 2, 100, 500)

	// THEN recent velocity is 2/2 = 1.0, the 15-unit tier
	assert.InDelta(t, 1.0, plan.RecentVelocity, 1e-9)
	assert.Equal(t, 15, plan.TargetStock)
}

func TestPlanRestock_StepZero_NoDivideByZero(t *testing.T) {
	// Step 0 (before the first tick) normalizes over one step.
	plan := PlanRestock(0, 0, 0, 0, 10, 500)
	assert.Zero(t, plan.RecentVelocity)
	assert.Zero(t, plan.TotalVelocity)
}
