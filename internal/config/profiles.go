package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is a site preset (on-disk YAML) describing installed capacities.
// Example file:
//
//	name: Coastal Wind Farm
//	description: 12-turbine site with 150 MWh storage
//	battery_mw: 150
//	solar_mw: 0
//	wind_mw: 220
type Profile struct {
	ID          string  `yaml:"-"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	BatteryMW   float64 `yaml:"battery_mw"`
	SolarMW     float64 `yaml:"solar_mw"`
	WindMW      float64 `yaml:"wind_mw"`
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.BatteryMW <= 0 {
		return fmt.Errorf("profile %q: battery_mw must be > 0", p.Name)
	}
	return nil
}

// LoadProfile reads one profile file. The profile ID is the file name
// without extension.
func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, err
	}
	p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// ListProfiles loads every *.yaml profile in dir, sorted by ID. Files that
// fail to parse are skipped.
func ListProfiles(dir string) ([]Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Profile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadProfile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
