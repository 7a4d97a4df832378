package models

// OptimizeRequest is the body of POST /api/optimize.
type OptimizeRequest struct {
	Hourly   []HourlyPoint  `json:"hourly" binding:"required"`
	Capacity CapacityConfig `json:"capacity" binding:"required"`
	Options  OptimizeOptions `json:"options,omitempty"`
}

// HourlyPoint is one hour of the supply/demand series.
type HourlyPoint struct {
	Hour   string  `json:"hour"`
	Total  float64 `json:"total"`
	Demand float64 `json:"demand"`
}

// CapacityConfig lists the installed asset capacities (MW).
type CapacityConfig struct {
	Battery float64 `json:"battery" binding:"required"`
	Solar   float64 `json:"solar,omitempty"`
	Wind    float64 `json:"wind,omitempty"`
}

// OptimizeOptions contains optional request parameters.
type OptimizeOptions struct {
	// Strategy picks the planner: "quantum" (default) or "greedy".
	Strategy string `json:"strategy,omitempty"`
	// Seed fixes the randomized summary figures, mainly for testing.
	Seed int64 `json:"seed,omitempty"`
	// IncludeStats adds imbalance statistics to the response.
	IncludeStats bool `json:"include_stats,omitempty"`
}
