// Package config assembles the two settings layers of the simulation,
// the structured agent/model document and the flat hydrological
// settings, into one validated, immutable configuration object.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gebhydro/gebconf/pkg/flatconf"
	"github.com/gebhydro/gebconf/pkg/settings"
)

// Source is one raw input text plus the name used in diagnostics.
type Source struct {
	Name string
	Data []byte
}

// Options describe the raw sources of one resolution run. Structured is
// the agent/model document; Flat is the base hydrological settings;
// Overlays are calibration layers merged onto Flat in order, later
// layers winning.
type Options struct {
	Structured Source
	Flat       Source
	Overlays   []Source
}

// Config is the resolved configuration: merged, fully interpolated and
// validated. It is constructed once at startup, never mutated
// afterwards, and safe for unsynchronized concurrent reads.
type Config struct {
	doc     *settings.Value
	flat    *flatconf.Set
	reports *ReportRegistry
}

// Resolve runs the whole pipeline: parse both layers, merge overlays,
// interpolate placeholders, parse report directives, and validate the
// global invariants. Resolution is deterministic and side-effect-free;
// any failure aborts with no partial configuration.
func Resolve(opts Options) (*Config, error) {
	doc, err := settings.Parse(opts.Structured.Data, sourceName(opts.Structured, "structured settings"))
	if err != nil {
		return nil, err
	}

	var flat *flatconf.Set
	if opts.Flat.Data != nil {
		base, err := flatconf.Parse(opts.Flat.Data, sourceName(opts.Flat, "flat settings"))
		if err != nil {
			return nil, err
		}
		overlays := make([]*flatconf.Set, 0, len(opts.Overlays))
		for i, overlay := range opts.Overlays {
			layer, err := flatconf.Parse(overlay.Data, sourceName(overlay, fmt.Sprintf("overlay %d", i+1)))
			if err != nil {
				return nil, err
			}
			overlays = append(overlays, layer)
		}
		merged := flatconf.Merge(base, overlays...)
		if flat, err = merged.Interpolate(); err != nil {
			return nil, err
		}
	} else if len(opts.Overlays) > 0 {
		return nil, fmt.Errorf("calibration overlays given without a base flat settings source")
	}

	cfg := &Config{doc: doc, flat: flat}
	if cfg.reports, err = parseReports(doc); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the source files and resolves them. settingsPath and the
// overlay paths may be empty when the model runs without the flat
// hydrological layer.
func Load(configPath, settingsPath string, overlayPaths ...string) (*Config, error) {
	opts := Options{}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model configuration: %w", err)
	}
	opts.Structured = Source{Name: filepath.Base(configPath), Data: data}

	if settingsPath != "" {
		data, err := os.ReadFile(settingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read hydrological settings: %w", err)
		}
		opts.Flat = Source{Name: filepath.Base(settingsPath), Data: data}
	}
	for _, path := range overlayPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read calibration overlay: %w", err)
		}
		opts.Overlays = append(opts.Overlays, Source{Name: filepath.Base(path), Data: data})
	}
	return Resolve(opts)
}

// Document returns the root of the structured settings tree.
func (c *Config) Document() *settings.Value { return c.doc }

// Flat returns the fully interpolated flat settings, or nil when no
// flat source was supplied.
func (c *Config) Flat() *flatconf.Set { return c.flat }

// Reports returns the report directive registry.
func (c *Config) Reports() *ReportRegistry { return c.reports }

func sourceName(s Source, fallback string) string {
	if s.Name != "" {
		return s.Name
	}
	return fallback
}
