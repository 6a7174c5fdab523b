package config

import (
	"errors"
	"fmt"
	"testing"
)

func timingDocument(spinup, start, end string) []byte {
	return []byte(fmt.Sprintf(`general:
  spinup_start: %s
  start_time: %s
  end_time: %s
`, spinup, start, end))
}

func TestValidateDateOrdering(t *testing.T) {
	_, err := Resolve(Options{
		Structured: Source{Name: "geb.yml", Data: timingDocument("2004-01-01", "2006-01-01", "2017-12-31")},
	})
	if err != nil {
		t.Fatalf("Expected valid ordering to pass, got %v", err)
	}
}

func TestValidateEndBeforeStart(t *testing.T) {
	// start_time and end_time swapped.
	_, err := Resolve(Options{
		Structured: Source{Name: "geb.yml", Data: timingDocument("2004-01-01", "2017-12-31", "2006-01-01")},
	})
	if err == nil {
		t.Fatal("Expected ValidationError")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T: %v", err, err)
	}
	if verr.Relation != "start_time <= end_time" {
		t.Errorf("Unexpected relation: %q", verr.Relation)
	}
	for _, name := range []string{"spinup_start", "start_time", "end_time"} {
		if verr.Values[name] == "" {
			t.Errorf("ValidationError should name %s", name)
		}
	}
}

func TestValidateSpinupAfterStart(t *testing.T) {
	_, err := Resolve(Options{
		Structured: Source{Name: "geb.yml", Data: timingDocument("2007-01-01", "2006-01-01", "2017-12-31")},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if verr.Relation != "spinup_start <= start_time" {
		t.Errorf("Unexpected relation: %q", verr.Relation)
	}
}

func TestValidateMissingTimingKey(t *testing.T) {
	_, err := Resolve(Options{
		Structured: Source{Name: "geb.yml", Data: []byte("general:\n  start_time: 2006-01-01\n  end_time: 2017-12-31\n")},
	})
	var merr *MissingRequiredKeyError
	if !errors.As(err, &merr) {
		t.Fatalf("Expected MissingRequiredKeyError, got %v", err)
	}
	if merr.Path != "general.spinup_start" {
		t.Errorf("Expected general.spinup_start to be required, got %q", merr.Path)
	}
}

func TestValidateScenarioMembership(t *testing.T) {
	doc := []byte(`general:
  scenario: made_up
  spinup_start: 2004-01-01
  start_time: 2006-01-01
  end_time: 2017-12-31
`)
	_, err := Resolve(Options{Structured: Source{Name: "geb.yml", Data: doc}})
	var terr *TypeMismatchError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected TypeMismatchError for unknown scenario, got %v", err)
	}
	if terr.Raw != "made_up" {
		t.Errorf("Error should carry the offending scenario: %v", terr)
	}
}

func TestScenarioDefaults(t *testing.T) {
	cfg, err := Resolve(Options{
		Structured: Source{Name: "geb.yml", Data: timingDocument("2004-01-01", "2006-01-01", "2017-12-31")},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	scenarios := cfg.Scenarios()
	if len(scenarios) != 4 || scenarios[0] != "base" {
		t.Errorf("Unexpected default scenarios: %v", scenarios)
	}
}
