package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quantum-dispatch/internal/analysis"
	"quantum-dispatch/internal/config"
	"quantum-dispatch/internal/data"
	"quantum-dispatch/internal/model"
	"quantum-dispatch/internal/schedule"
	"quantum-dispatch/internal/strategy"
)

var (
	cfgPath string

	dataPath string
	feedURL  string
	feedKey  string
	zone     string
	date     string

	strategyName string
	batteryMW    float64
	seed         int64
	outCSV       string
)

func main() {
	root := &cobra.Command{
		Use:           "qdispatch",
		Short:         "Battery schedule optimization from hourly supply/demand series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML/JSON config (optional)")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Solve a charge/discharge schedule for a series",
		RunE:  runOptimize,
	}
	optimizeCmd.Flags().StringVar(&dataPath, "data", "", "Path to series JSON file")
	optimizeCmd.Flags().StringVar(&feedURL, "feed-url", "", "Grid feed base URL (alternative to --data)")
	optimizeCmd.Flags().StringVar(&feedKey, "feed-key", "", "Grid feed API key")
	optimizeCmd.Flags().StringVar(&zone, "zone", "", "Grid feed zone")
	optimizeCmd.Flags().StringVar(&date, "date", "", "Series date (YYYY-MM-DD)")
	optimizeCmd.Flags().StringVar(&strategyName, "strategy", "quantum", "Planner: quantum or greedy")
	optimizeCmd.Flags().Float64Var(&batteryMW, "battery", 0, "Battery capacity override (MW)")
	optimizeCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible output")
	optimizeCmd.Flags().StringVar(&outCSV, "out", "", "Optional path to write schedule CSV")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print imbalance statistics for a series",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&dataPath, "data", "", "Path to series JSON file")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List site profile presets",
		RunE:  runProfiles,
	}

	root.AddCommand(optimizeCmd, analyzeCmd, profilesCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadSeries(ctx context.Context) (model.EnergySeries, model.Capacity, error) {
	var doc *data.SeriesDocument
	var err error
	switch {
	case dataPath != "":
		doc, err = data.LoadSeriesJSON(dataPath)
	case feedURL != "":
		client := data.NewFeedClient(feedKey, feedURL)
		doc, err = client.FetchSeries(ctx, zone, date)
	default:
		return nil, model.Capacity{}, fmt.Errorf("either --data or --feed-url is required")
	}
	if err != nil {
		return nil, model.Capacity{}, err
	}
	return doc.ToModel()
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}

	series, cap, err := loadSeries(cmd.Context())
	if err != nil {
		return err
	}
	if batteryMW > 0 {
		cap.BatteryMW = batteryMW
	}

	var strat strategy.Strategy
	switch strategyName {
	case "quantum":
		annealCfg := cfg.Solver.ToAnnealConfig()
		if seed != 0 {
			annealCfg.Seed = seed
		}
		strat, err = strategy.NewQuantumStrategy(annealCfg)
		if err != nil {
			return err
		}
	case "greedy":
		strat = strategy.GreedyStrategy{}
	default:
		return fmt.Errorf("unsupported strategy: %q", strategyName)
	}

	engineSeed := seed
	if engineSeed == 0 {
		engineSeed = cfg.Solver.Seed
	}
	result, err := schedule.New(engineSeed).Run(cmd.Context(), series, cap, strat)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HOUR\tACTION\tAMOUNT(MW)\tBALANCE(MW)\tSOC")
	for _, row := range result.Schedule {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f -> %.2f\n",
			row.Hour, row.Action, row.AmountMW, row.GridBalanceMW, row.SOCStart, row.SOCEnd)
	}
	w.Flush()

	fmt.Printf("\nSolver: %s (%d reads, %.2fs)\n",
		result.Metrics.Algorithm, result.Metrics.Iterations, result.Metrics.ExecutionTime)
	fmt.Printf("Optimization: %d%%, cost saving $%d, carbon reduction %d kg\n",
		result.Summary.TotalOptimizationPct, result.Summary.CostSavingUSD, result.Summary.CarbonReductionKg)

	for _, rec := range result.Recommendations {
		fmt.Printf("[%s] %s: %s\n", rec.Hour, rec.Type, rec.Message)
	}

	if outCSV != "" {
		if err := schedule.WriteScheduleCSV(outCSV, result.Schedule); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("Schedule written to %s\n", outCSV)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	series, _, err := loadSeries(cmd.Context())
	if err != nil {
		return err
	}

	stats := analysis.Compute(series)
	fmt.Printf("Hours: %d (surplus %d, deficit %d)\n", stats.Hours, stats.SurplusHours, stats.DeficitHours)
	fmt.Printf("Imbalance: total %.1f MW, mean %.1f MW, stddev %.1f MW, max %.1f MW\n",
		stats.TotalImbalanceMW, stats.MeanImbalanceMW, stats.StdDevMW, stats.MaxImbalanceMW)
	if stats.PeakSurplusHour != "" {
		fmt.Printf("Peak surplus at %s\n", stats.PeakSurplusHour)
	}
	if stats.PeakDeficitHour != "" {
		fmt.Printf("Peak deficit at %s\n", stats.PeakDeficitHour)
	}
	return nil
}

func runProfiles(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	profiles, err := config.ListProfiles(cfg.Profiles.Dir)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBATTERY(MW)\tSOLAR(MW)\tWIND(MW)")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.0f\n", p.ID, p.Name, p.BatteryMW, p.SolarMW, p.WindMW)
	}
	return w.Flush()
}
