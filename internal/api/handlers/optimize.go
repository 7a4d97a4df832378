package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quantum-dispatch/internal/analysis"
	"quantum-dispatch/internal/api/models"
	"quantum-dispatch/internal/config"
	"quantum-dispatch/internal/logger"
	"quantum-dispatch/internal/metrics"
	"quantum-dispatch/internal/model"
	"quantum-dispatch/internal/schedule"
	"quantum-dispatch/internal/strategy"
)

// OptimizeHandler handles schedule optimization requests.
type OptimizeHandler struct {
	cfg       *config.Config
	log       logger.Logger
	collector *metrics.Collector
}

// NewOptimizeHandler creates a new optimize handler. collector may be nil.
func NewOptimizeHandler(cfg *config.Config, log logger.Logger, collector *metrics.Collector) *OptimizeHandler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &OptimizeHandler{cfg: cfg, log: log, collector: collector}
}

// Optimize handles POST /api/optimize.
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, cap, err := toDomain(req)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	strat, err := h.buildStrategy(req.Options)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "INVALID_STRATEGY", err.Error())
		return
	}

	seed := req.Options.Seed
	if seed == 0 {
		seed = h.cfg.Solver.Seed
	}
	engine := schedule.New(seed)

	started := time.Now()
	result, err := engine.Run(c.Request.Context(), series, cap, strat)
	if err != nil {
		h.log.Errorf("optimize failed: %v", err)
		h.fail(c, http.StatusInternalServerError, "OPTIMIZE_ERROR", err.Error())
		return
	}

	if h.collector != nil {
		h.collector.RecordRequest(http.StatusOK)
		h.collector.RecordSolve(time.Since(started), result.PlanEnergy)
	}
	h.log.Debugw("optimize completed", map[string]any{
		"hours":       len(result.Schedule),
		"strategy":    strat.Name(),
		"plan_energy": result.PlanEnergy,
	})

	resp := buildResponse(result)
	if req.Options.IncludeStats {
		resp.Stats = toStatsModel(analysis.Compute(series.Window(schedule.WindowHours)))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OptimizeHandler) fail(c *gin.Context, status int, code, msg string) {
	if h.collector != nil {
		h.collector.RecordRequest(status)
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: msg,
		},
	})
}

func (h *OptimizeHandler) buildStrategy(opts models.OptimizeOptions) (strategy.Strategy, error) {
	name := opts.Strategy
	if name == "" {
		name = "quantum"
	}
	switch name {
	case "quantum":
		annealCfg := h.cfg.Solver.ToAnnealConfig()
		if opts.Seed != 0 {
			annealCfg.Seed = opts.Seed
		}
		return strategy.NewQuantumStrategy(annealCfg)
	case "greedy":
		return strategy.GreedyStrategy{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
}

func toDomain(req models.OptimizeRequest) (model.EnergySeries, model.Capacity, error) {
	if len(req.Hourly) == 0 {
		return nil, model.Capacity{}, fmt.Errorf("hourly series is empty")
	}
	if req.Capacity.Battery <= 0 {
		return nil, model.Capacity{}, fmt.Errorf("capacity.battery must be > 0")
	}
	series := make(model.EnergySeries, len(req.Hourly))
	for i, h := range req.Hourly {
		series[i] = model.HourlyPoint{
			Hour:     h.Hour,
			TotalMW:  h.Total,
			DemandMW: h.Demand,
		}
	}
	cap := model.Capacity{
		BatteryMW: req.Capacity.Battery,
		SolarMW:   req.Capacity.Solar,
		WindMW:    req.Capacity.Wind,
	}
	return series, cap, nil
}

func buildResponse(result *schedule.Result) models.OptimizeResponse {
	entries := make([]models.ScheduleEntry, len(result.Schedule))
	for i, row := range result.Schedule {
		entries[i] = models.ScheduleEntry{
			Hour:            row.Hour,
			Action:          string(row.Action),
			Amount:          row.AmountMW,
			Efficiency:      row.EfficiencyPct,
			GridBalance:     row.GridBalanceMW,
			QuantumDecision: row.Decision,
			SOCStart:        row.SOCStart,
			SOCEnd:          row.SOCEnd,
		}
	}

	recs := make([]models.Recommendation, len(result.Recommendations))
	for i, r := range result.Recommendations {
		recs[i] = models.Recommendation{
			Time:    r.Hour,
			Type:    r.Type,
			Message: r.Message,
		}
	}

	return models.OptimizeResponse{
		Schedule:        entries,
		Recommendations: recs,
		Metrics: models.SolverMetrics{
			Qubits:        result.Metrics.Qubits,
			Gates:         result.Metrics.Gates,
			Depth:         result.Metrics.Depth,
			ExecutionTime: result.Metrics.ExecutionTime,
			Fidelity:      result.Metrics.Fidelity,
			Optimization:  result.Metrics.Algorithm,
			Iterations:    result.Metrics.Iterations,
		},
		Summary: models.Summary{
			TotalOptimization: result.Summary.TotalOptimizationPct,
			CostSaving:        result.Summary.CostSavingUSD,
			CarbonReduction:   result.Summary.CarbonReductionKg,
			Efficiency:        result.Summary.EfficiencyPct,
		},
	}
}

func toStatsModel(s analysis.ImbalanceStats) *models.ImbalanceStats {
	return &models.ImbalanceStats{
		Hours:            s.Hours,
		TotalImbalanceMW: s.TotalImbalanceMW,
		MeanImbalanceMW:  s.MeanImbalanceMW,
		StdDevMW:         s.StdDevMW,
		MaxImbalanceMW:   s.MaxImbalanceMW,
		SurplusHours:     s.SurplusHours,
		DeficitHours:     s.DeficitHours,
		PeakSurplusHour:  s.PeakSurplusHour,
		PeakDeficitHour:  s.PeakDeficitHour,
	}
}
