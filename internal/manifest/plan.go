package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/stability"
)

// Plan is the persisted form of one complete optimization run: the ship
// with committed positions, the settings used, and the results.
type Plan struct {
	Version   string             `json:"version"`
	CreatedAt string             `json:"created_at"`
	Ship      *model.Ship        `json:"ship"`
	Settings  model.StowSettings `json:"settings"`
	Placement *engine.Result     `json:"placement,omitempty"`
	Analysis  *stability.Result  `json:"analysis,omitempty"`
}

// NewPlan assembles a plan ready for saving.
func NewPlan(ship *model.Ship, settings model.StowSettings, placement *engine.Result, analysis *stability.Result) Plan {
	return Plan{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Ship:      ship,
		Settings:  settings,
		Placement: placement,
		Analysis:  analysis,
	}
}

// SavePlan writes the plan as indented JSON, creating parent
// directories as needed. An existing file is rotated to a timestamped
// backup first so a bad write never destroys the previous plan.
func SavePlan(path string, plan Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating plan directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backup := fmt.Sprintf("%s.%s.bak", path, time.Now().UTC().Format("20060102T150405Z"))
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("backing up previous plan: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}

// LoadPlan reads a previously saved plan file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("parsing plan %s: %w", path, err)
	}
	if plan.Version == "" {
		return Plan{}, fmt.Errorf("invalid plan file %s: missing version field", path)
	}
	if plan.Ship == nil {
		return Plan{}, fmt.Errorf("invalid plan file %s: missing ship", path)
	}
	return plan, nil
}
