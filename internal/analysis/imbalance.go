package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"quantum-dispatch/internal/model"
)

// ImbalanceStats summarizes how far a series is from supply/demand balance.
// All figures are grid-side MW.
type ImbalanceStats struct {
	Hours int

	TotalImbalanceMW float64
	MeanImbalanceMW  float64
	StdDevMW         float64
	MaxImbalanceMW   float64

	SurplusHours int
	DeficitHours int

	// PeakSurplusHour / PeakDeficitHour are the hour labels with the largest
	// excess and shortfall. Empty when the series has none.
	PeakSurplusHour string
	PeakDeficitHour string
}

// Compute derives imbalance statistics for a series.
func Compute(series model.EnergySeries) ImbalanceStats {
	s := ImbalanceStats{Hours: len(series)}
	if len(series) == 0 {
		return s
	}

	abs := make([]float64, 0, len(series))
	peakSurplus := 0.0
	peakDeficit := 0.0

	for _, pt := range series {
		surplus := pt.SurplusMW()
		abs = append(abs, math.Abs(surplus))

		if surplus > 0 {
			s.SurplusHours++
			if surplus > peakSurplus {
				peakSurplus = surplus
				s.PeakSurplusHour = pt.Hour
			}
		} else if surplus < 0 {
			s.DeficitHours++
			if -surplus > peakDeficit {
				peakDeficit = -surplus
				s.PeakDeficitHour = pt.Hour
			}
		}

		if math.Abs(surplus) > s.MaxImbalanceMW {
			s.MaxImbalanceMW = math.Abs(surplus)
		}
		s.TotalImbalanceMW += math.Abs(surplus)
	}

	s.MeanImbalanceMW = stat.Mean(abs, nil)
	if len(abs) > 1 {
		s.StdDevMW = stat.StdDev(abs, nil)
	}
	return s
}
