package models

// OptimizeResponse is the body returned by POST /api/optimize.
type OptimizeResponse struct {
	Schedule        []ScheduleEntry  `json:"schedule"`
	Recommendations []Recommendation `json:"recommendations"`
	Metrics         SolverMetrics    `json:"metrics"`
	Summary         Summary          `json:"summary"`
	Stats           *ImbalanceStats  `json:"stats,omitempty"`
}

// ScheduleEntry is one hour of the schedule.
type ScheduleEntry struct {
	Hour            string  `json:"hour"`
	Action          string  `json:"action"` // "Charge" or "Discharge"
	Amount          int     `json:"amount"`
	Efficiency      int     `json:"efficiency"`
	GridBalance     int     `json:"gridBalance"`
	QuantumDecision float64 `json:"quantum_decision"`
	SOCStart        float64 `json:"soc_start"`
	SOCEnd          float64 `json:"soc_end"`
}

// Recommendation is an actionable note for one hour.
type Recommendation struct {
	Time    string `json:"time"`
	Type    string `json:"type"` // "excess" or "deficit"
	Message string `json:"message"`
}

// SolverMetrics describes the solve behind the schedule.
type SolverMetrics struct {
	Qubits        int     `json:"qubits"`
	Gates         int     `json:"gates"`
	Depth         int     `json:"depth"`
	ExecutionTime float64 `json:"executionTime"`
	Fidelity      float64 `json:"fidelity"`
	Optimization  string  `json:"optimization"`
	Iterations    int     `json:"iterations"`
}

// Summary holds the headline figures for the window.
type Summary struct {
	TotalOptimization int `json:"totalOptimization"`
	CostSaving        int `json:"costSaving"`
	CarbonReduction   int `json:"carbonReduction"`
	Efficiency        int `json:"efficiency"`
}

// ImbalanceStats summarizes the submitted series.
type ImbalanceStats struct {
	Hours            int     `json:"hours"`
	TotalImbalanceMW float64 `json:"total_imbalance_mw"`
	MeanImbalanceMW  float64 `json:"mean_imbalance_mw"`
	StdDevMW         float64 `json:"std_dev_mw"`
	MaxImbalanceMW   float64 `json:"max_imbalance_mw"`
	SurplusHours     int     `json:"surplus_hours"`
	DeficitHours     int     `json:"deficit_hours"`
	PeakSurplusHour  string  `json:"peak_surplus_hour,omitempty"`
	PeakDeficitHour  string  `json:"peak_deficit_hour,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
	Solver string `json:"solver"`
}

// InfoResponse describes the solver backend (GET /api/quantum-info).
type InfoResponse struct {
	Backend   string `json:"backend"`
	Version   string `json:"version"`
	Algorithm string `json:"algorithm"`
	Reads     int    `json:"reads"`
	Sweeps    int    `json:"sweeps"`
	Available bool   `json:"available"`
}

// ProfileInfo describes a site preset (GET /api/profiles).
type ProfileInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BatteryMW   float64 `json:"battery_mw"`
	SolarMW     float64 `json:"solar_mw,omitempty"`
	WindMW      float64 `json:"wind_mw,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
