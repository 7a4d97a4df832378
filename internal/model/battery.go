package model

import (
	"errors"
	"math"
)

// BatteryParams defines the physical parameters of the storage asset.
// Units:
// - EnergyCapacityMWh: MWh
// - Efficiencies: 0..1
// - SOC: fraction 0..1
type BatteryParams struct {
	EnergyCapacityMWh   float64
	ChargeEfficiency    float64
	DischargeEfficiency float64
	MinSOC              float64
	MaxSOC              float64
}

// BatteryState captures mutable state.
type BatteryState struct {
	// SOC is the state of charge as a fraction [0,1].
	SOC float64
}

// Battery bundles params + state for the hour-by-hour schedule walk.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

// DefaultBatteryParams returns the parameters used when a request only
// supplies a capacity figure.
func DefaultBatteryParams(capacityMWh float64) BatteryParams {
	return BatteryParams{
		EnergyCapacityMWh:   capacityMWh,
		ChargeEfficiency:    0.95,
		DischargeEfficiency: 0.95,
		MinSOC:              0.10,
		MaxSOC:              0.90,
	}
}

func NewBattery(params BatteryParams, initialSOC float64) (*Battery, error) {
	b := &Battery{
		Params: params,
		State:  BatteryState{SOC: initialSOC},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.EnergyCapacityMWh <= 0 {
		return errors.New("EnergyCapacityMWh must be > 0")
	}
	if p.ChargeEfficiency <= 0 || p.ChargeEfficiency > 1 {
		return errors.New("ChargeEfficiency must be in (0, 1]")
	}
	if p.DischargeEfficiency <= 0 || p.DischargeEfficiency > 1 {
		return errors.New("DischargeEfficiency must be in (0, 1]")
	}
	if p.MinSOC < 0 || p.MinSOC > 1 || p.MaxSOC < 0 || p.MaxSOC > 1 || p.MinSOC > p.MaxSOC {
		return errors.New("MinSOC/MaxSOC must satisfy 0<=MinSOC<=MaxSOC<=1")
	}
	if b.State.SOC < p.MinSOC || b.State.SOC > p.MaxSOC {
		return errors.New("initial SOC must be within [MinSOC, MaxSOC]")
	}
	return nil
}

// DecisionResult captures what happened in one scheduled hour.
type DecisionResult struct {
	Action     Action
	EnergyMWh  float64 // realized grid-side energy (may be clipped by SOC)
	SOCStart   float64
	SOCEnd     float64
}

// ApplyDecision applies one hour of the schedule, enforcing SOC bounds by
// clipping the requested energy. energyMWh is the grid-side energy magnitude
// for the hour.
func (b *Battery) ApplyDecision(action Action, energyMWh float64) (DecisionResult, error) {
	if energyMWh < 0 {
		return DecisionResult{}, errors.New("energyMWh must be >= 0")
	}

	res := DecisionResult{
		Action:   action,
		SOCStart: b.State.SOC,
	}

	switch action {
	case ActionCharge:
		// Max additional stored energy before hitting MaxSOC.
		storableMWh := (b.Params.MaxSOC - b.State.SOC) * b.Params.EnergyCapacityMWh
		limitBySOC := math.Max(0, storableMWh/b.Params.ChargeEfficiency)
		fromGridMWh := math.Min(energyMWh, limitBySOC)
		storedMWh := fromGridMWh * b.Params.ChargeEfficiency
		b.State.SOC = clamp01((b.State.SOC*b.Params.EnergyCapacityMWh + storedMWh) / b.Params.EnergyCapacityMWh)
		res.EnergyMWh = fromGridMWh
	case ActionDischarge:
		// Max withdrawable stored energy before hitting MinSOC.
		withdrawableMWh := (b.State.SOC - b.Params.MinSOC) * b.Params.EnergyCapacityMWh
		limitBySOC := math.Max(0, withdrawableMWh*b.Params.DischargeEfficiency)
		toGridMWh := math.Min(energyMWh, limitBySOC)
		withdrawnMWh := toGridMWh / b.Params.DischargeEfficiency
		b.State.SOC = clamp01((b.State.SOC*b.Params.EnergyCapacityMWh - withdrawnMWh) / b.Params.EnergyCapacityMWh)
		res.EnergyMWh = toGridMWh
	default:
		return DecisionResult{}, errors.New("unknown action")
	}

	res.SOCEnd = b.State.SOC
	return res, nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
