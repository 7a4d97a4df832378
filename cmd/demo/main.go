package main

import (
	"context"
	"flag"
	"fmt"
	"math"

	"quantum-dispatch/internal/anneal"
	"quantum-dispatch/internal/model"
	"quantum-dispatch/internal/schedule"
	"quantum-dispatch/internal/strategy"
)

// Demo:
// - Synthesize a day of supply/demand with a midday solar bump
// - Run the quantum-inspired planner over the first 8 hours
// - Print the schedule to show how the pieces fit together
func main() {
	batteryMW := flag.Float64("battery", 100, "Battery capacity (MW)")
	seed := flag.Int64("seed", 42, "Seed for reproducible output")
	outCSV := flag.String("out", "", "Optional path to write schedule CSV")
	flag.Parse()

	series := make(model.EnergySeries, 0, 24)
	for h := 0; h < 24; h++ {
		// Solar peaks at 13:00; demand peaks in the evening.
		solar := 400 * math.Exp(-math.Pow(float64(h)-13, 2)/18)
		demand := 300 + 120*math.Exp(-math.Pow(float64(h)-19, 2)/8)
		series = append(series, model.HourlyPoint{
			Hour:     fmt.Sprintf("%02d:00", h),
			TotalMW:  200 + solar,
			DemandMW: demand,
		})
	}

	strat, err := strategy.NewQuantumStrategy(anneal.Config{Seed: *seed})
	if err != nil {
		panic(err)
	}

	result, err := schedule.New(*seed).Run(context.Background(), series, model.Capacity{BatteryMW: *batteryMW}, strat)
	if err != nil {
		panic(err)
	}

	for _, row := range result.Schedule {
		fmt.Printf("%s  %-10s  %4d MW  balance %5d MW  SOC %.2f -> %.2f\n",
			row.Hour, row.Action, row.AmountMW, row.GridBalanceMW, row.SOCStart, row.SOCEnd)
	}
	fmt.Printf("\noptimization %d%%  efficiency %d%%  solver %s\n",
		result.Summary.TotalOptimizationPct, result.Summary.EfficiencyPct, result.Metrics.Algorithm)

	if *outCSV != "" {
		if err := schedule.WriteScheduleCSV(*outCSV, result.Schedule); err != nil {
			panic(err)
		}
		fmt.Println("schedule written to", *outCSV)
	}
}
