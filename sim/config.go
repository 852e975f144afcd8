package sim

// StockConfig groups the inventory policy knobs.
type StockConfig struct {
	RestockThreshold int // quantity below which a restock request fires (must be > 0)
	MaxStockLevel    int // hard ceiling on any book's quantity (must be > 0)
}

// BehaviorConfig groups the agent tuning constants. The two gate
// probabilities come straight from the original tuning and carry no deeper
// model, so they stay configurable rather than hard-coded.
type BehaviorConfig struct {
	CustomerPickProbability float64 // chance a deciding customer picks a real book
	EmployeeWorkProbability float64 // chance a proactive employee follows through
}

// Config collects all engine parameters for NewSimulator.
type Config struct {
	Stock    StockConfig
	Behavior BehaviorConfig
	Seed     int64 // master seed; same seed + same scenario = same run
}

// DefaultConfig returns the engine defaults: threshold 3, ceiling 10,
// the 0.8/0.7 behavior gates, seed 42.
func DefaultConfig() Config {
	return Config{
		Stock: StockConfig{
			RestockThreshold: 3,
			MaxStockLevel:    10,
		},
		Behavior: BehaviorConfig{
			CustomerPickProbability: 0.8,
			EmployeeWorkProbability: 0.7,
		},
		Seed: 42,
	}
}
