package sim

// MaxUnitsPerRestock caps how many units a single restock event may add.
const MaxUnitsPerRestock = 6

// RestockUnitDiscount is subtracted from the selling price to get the
// per-unit restock cost (floored at zero).
const RestockUnitDiscount = 200.0

// RestockPlan is the outcome of the sizing policy for one restock request.
type RestockPlan struct {
	TargetStock    int     // velocity tier target, capped at the max stock level
	Quantity       int     // units to add, 0 when stock already meets target
	Cost           float64 // Quantity × max(0, price − RestockUnitDiscount)
	TotalVelocity  float64 // all-time sales per step
	RecentVelocity float64 // windowed sales per step, drives the tier
}

// velocityTiers maps a minimum recent velocity to a target stock level.
// Evaluated high to low, first match wins.
var velocityTiers = []struct {
	minVelocity float64
	target      int
}{
	{1.5, 25},
	{1.0, 15},
	{0.5, 8},
	{0.2, 5},
}

const baseTargetStock = 2

// PlanRestock sizes a restock for a book given its current quantity, sales
// history and the configured stock ceiling. Pure: no entity is touched.
//
// The recent velocity is normalized over min(RecentWindowSteps, step) so the
// first few ticks do not dilute the rate, then mapped through velocityTiers.
// The plan never exceeds MaxUnitsPerRestock units and never pushes quantity
// past maxStock. A zero-quantity plan has zero cost.
func PlanRestock(quantity, totalSales, recentSales int, step int64, maxStock int, price float64) RestockPlan {
	elapsed := step
	if elapsed < 1 {
		elapsed = 1
	}
	window := int64(RecentWindowSteps)
	if elapsed < window {
		window = elapsed
	}

	plan := RestockPlan{
		TotalVelocity:  float64(totalSales) / float64(elapsed),
		RecentVelocity: float64(recentSales) / float64(window),
	}

	target := baseTargetStock
	for _, tier := range velocityTiers {
		if plan.RecentVelocity >= tier.minVelocity {
			target = tier.target
			break
		}
	}
	if target > maxStock {
		target = maxStock
	}
	plan.TargetStock = target

	needed := target - quantity
	if needed < 0 {
		needed = 0
	}
	qty := needed
	if qty > MaxUnitsPerRestock {
		qty = MaxUnitsPerRestock
	}
	if quantity+qty > maxStock {
		qty = maxStock - quantity
		if qty < 0 {
			qty = 0
		}
	}
	plan.Quantity = qty

	unitCost := price - RestockUnitDiscount
	if unitCost < 0 {
		unitCost = 0
	}
	plan.Cost = float64(qty) * unitCost
	return plan
}
