package data

import (
	"encoding/json"
	"fmt"
	"os"

	"quantum-dispatch/internal/model"
)

// SeriesDocument is the wire/file shape of an hourly supply-demand series.
// It matches the optimize request body so captured requests can be replayed
// from disk.
type SeriesDocument struct {
	Hourly   []HourlyRecord `json:"hourly"`
	Capacity CapacityRecord `json:"capacity"`
}

type HourlyRecord struct {
	Hour   string  `json:"hour"`
	Total  float64 `json:"total"`
	Demand float64 `json:"demand"`
}

type CapacityRecord struct {
	Battery float64 `json:"battery"`
	Solar   float64 `json:"solar,omitempty"`
	Wind    float64 `json:"wind,omitempty"`
}

// ToModel converts the document to domain types.
func (d *SeriesDocument) ToModel() (model.EnergySeries, model.Capacity, error) {
	if d == nil || len(d.Hourly) == 0 {
		return nil, model.Capacity{}, fmt.Errorf("document has no hourly data")
	}
	series := make(model.EnergySeries, len(d.Hourly))
	for i, h := range d.Hourly {
		series[i] = model.HourlyPoint{
			Hour:     h.Hour,
			TotalMW:  h.Total,
			DemandMW: h.Demand,
		}
	}
	cap := model.Capacity{
		BatteryMW: d.Capacity.Battery,
		SolarMW:   d.Capacity.Solar,
		WindMW:    d.Capacity.Wind,
	}
	return series, cap, nil
}

// LoadSeriesJSON reads a series document from a JSON file.
func LoadSeriesJSON(path string) (*SeriesDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc SeriesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
