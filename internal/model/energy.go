package model

import "math"

// HourlyPoint is one hour of the supply/demand series submitted for
// optimization.
// Units:
// - TotalMW: total generation (MW)
// - DemandMW: load (MW)
type HourlyPoint struct {
	Hour     string  // display label, e.g. "14:00"
	TotalMW  float64
	DemandMW float64
}

// SurplusMW is generation minus load for the hour. Positive means excess
// supply, negative means deficit.
func (p HourlyPoint) SurplusMW() float64 {
	return p.TotalMW - p.DemandMW
}

// EnergySeries is an ordered hourly series.
type EnergySeries []HourlyPoint

// Window returns the first n points (or the whole series if shorter).
func (s EnergySeries) Window(n int) EnergySeries {
	if n < 0 {
		n = 0
	}
	if len(s) < n {
		n = len(s)
	}
	return s[:n]
}

// TotalImbalanceMW is the sum of |surplus| over the series.
func (s EnergySeries) TotalImbalanceMW() float64 {
	total := 0.0
	for _, p := range s {
		total += math.Abs(p.SurplusMW())
	}
	return total
}

// Capacity describes the installed asset capacities referenced by a request.
// Only the battery is used by the optimizer; solar/wind are carried for
// display purposes.
type Capacity struct {
	BatteryMW float64
	SolarMW   float64
	WindMW    float64
}
