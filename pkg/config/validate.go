package config

import "time"

// defaultScenarios is the scenario set of the original model, used when
// the document does not declare general.scenarios itself.
var defaultScenarios = []string{"base", "self_investment", "ngo_training", "government_subsidies"}

// Scenarios returns the configured scenario names, falling back to the
// model's default set.
func (c *Config) Scenarios() []string {
	if names, err := c.StringList("general.scenarios"); err == nil && len(names) > 0 {
		return names
	}
	out := make([]string, len(defaultScenarios))
	copy(out, defaultScenarios)
	return out
}

// validate runs the cross-field invariants once at startup. The timing
// keys are required: a missing spin-up period must fail loudly rather
// than silently defaulting to the nominal start.
func (c *Config) validate() error {
	spinup, err := c.Date("general.spinup_start")
	if err != nil {
		return err
	}
	start, err := c.Date("general.start_time")
	if err != nil {
		return err
	}
	end, err := c.Date("general.end_time")
	if err != nil {
		return err
	}

	values := map[string]string{
		"spinup_start": spinup.Format(structuredDateLayout),
		"start_time":   start.Format(structuredDateLayout),
		"end_time":     end.Format(structuredDateLayout),
	}
	if spinup.After(start) {
		return &ValidationError{Relation: "spinup_start <= start_time", Values: values}
	}
	if start.After(end) {
		return &ValidationError{Relation: "start_time <= end_time", Values: values}
	}

	if c.Has("general.scenario") {
		if _, err := c.Enum("general.scenario", c.Scenarios()); err != nil {
			return err
		}
	}
	return nil
}

// SpinupStart returns general.spinup_start. The key is guaranteed
// present on a resolved Config.
func (c *Config) SpinupStart() time.Time {
	t, _ := c.Date("general.spinup_start")
	return t
}

// StartTime returns general.start_time.
func (c *Config) StartTime() time.Time {
	t, _ := c.Date("general.start_time")
	return t
}

// EndTime returns general.end_time.
func (c *Config) EndTime() time.Time {
	t, _ := c.Date("general.end_time")
	return t
}
