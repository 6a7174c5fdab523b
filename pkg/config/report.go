package config

import (
	"fmt"
	"strings"

	"github.com/gebhydro/gebconf/pkg/settings"
)

// Aggregation is the function applied to a reported variable before it
// is written out.
type Aggregation string

const (
	AggregationNone    Aggregation = "none"
	AggregationMean    Aggregation = "mean"
	AggregationSum     Aggregation = "sum"
	AggregationNanMean Aggregation = "nanmean"
	AggregationNanSum  Aggregation = "nansum"
)

// Format is the on-disk output format of a report directive.
type Format string

const (
	FormatCSV Format = "csv"
	FormatNPY Format = "npy"
)

// Frequency says when a directive fires.
type Frequency string

const (
	FrequencyInitialOnly Frequency = "initial_only"
	FrequencyPerTimestep Frequency = "per_timestep"
)

// SaveMode says whether a directive's data is kept in the run's save
// state, exported to the report folder, or both.
type SaveMode string

const (
	SaveModeSave       SaveMode = "save"
	SaveModeExport     SaveMode = "export"
	SaveModeSaveExport SaveMode = "save+export"
)

var (
	aggregations = []Aggregation{AggregationNone, AggregationMean, AggregationSum, AggregationNanMean, AggregationNanSum}
	formats      = []Format{FormatCSV, FormatNPY}
	frequencies  = []Frequency{FrequencyInitialOnly, FrequencyPerTimestep}
	saveModes    = []SaveMode{SaveModeSave, SaveModeExport, SaveModeSaveExport}
)

// Directive is a single report specification: what to emit, how to
// aggregate it, and when. The same label may legitimately appear more
// than once with different settings, so directives live in an ordered
// list and are never collapsed into a map keyed by label.
type Directive struct {
	Submodel    string // empty for the agent-level report section
	Label       string
	SourceType  string
	Aggregation Aggregation
	VarName     string
	Format      Format
	Frequency   Frequency
	SaveMode    SaveMode
}

// ReportRegistry holds the ordered report directives parsed from the
// structured document and answers queries from the reporting
// collaborator.
type ReportRegistry struct {
	directives []Directive
}

// All returns every directive in document order.
func (r *ReportRegistry) All() []Directive {
	out := make([]Directive, len(r.directives))
	copy(out, r.directives)
	return out
}

// Len returns the number of directives.
func (r *ReportRegistry) Len() int { return len(r.directives) }

// ByFrequency returns the directives firing at the given frequency, in
// document order.
func (r *ReportRegistry) ByFrequency(f Frequency) []Directive {
	var out []Directive
	for _, d := range r.directives {
		if d.Frequency == f {
			out = append(out, d)
		}
	}
	return out
}

// BySourceType returns the directives reading from the given source
// type, in document order.
func (r *ReportRegistry) BySourceType(sourceType string) []Directive {
	var out []Directive
	for _, d := range r.directives {
		if d.SourceType == sourceType {
			out = append(out, d)
		}
	}
	return out
}

// ByLabel returns every directive carrying the label, in document
// order. A result longer than one is legal.
func (r *ReportRegistry) ByLabel(label string) []Directive {
	var out []Directive
	for _, d := range r.directives {
		if d.Label == label {
			out = append(out, d)
		}
	}
	return out
}

// DuplicateLabels returns the labels that appear more than once within
// one report section, in first-seen order. Duplicates are legal, but
// they may also be an authoring oversight, so consumers can surface
// them to the model's owners.
func (r *ReportRegistry) DuplicateLabels() []string {
	counts := make(map[string]int)
	var order []string
	for _, d := range r.directives {
		key := d.Submodel + "\x00" + d.Label
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	var out []string
	for _, key := range order {
		if counts[key] > 1 {
			out = append(out, strings.SplitN(key, "\x00", 2)[1])
		}
	}
	return out
}

// parseReports walks the document's top-level "report" section and
// every "report_<submodel>" section, preserving entry order and
// duplicate labels.
func parseReports(doc *settings.Value) (*ReportRegistry, error) {
	reg := &ReportRegistry{}
	for _, entry := range doc.Entries() {
		submodel, ok := reportSubmodel(entry.Key)
		if !ok {
			continue
		}
		if entry.Value.Kind() != settings.KindMapping {
			return nil, &TypeMismatchError{
				Path:     entry.Key,
				Raw:      entry.Value.Kind().String(),
				Expected: "mapping of report entries",
			}
		}
		for _, item := range entry.Value.Entries() {
			d, err := parseDirective(submodel, entry.Key, item)
			if err != nil {
				return nil, err
			}
			reg.directives = append(reg.directives, d)
		}
	}
	return reg, nil
}

func reportSubmodel(key string) (string, bool) {
	if key == "report" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(key, "report_"); ok && rest != "" {
		return rest, true
	}
	return "", false
}

func parseDirective(submodel, section string, item settings.MapEntry) (Directive, error) {
	d := Directive{
		Submodel:    submodel,
		Label:       item.Key,
		Aggregation: AggregationNone,
		Frequency:   FrequencyPerTimestep,
	}
	at := func(field string) string {
		return fmt.Sprintf("%s.%s.%s", section, item.Key, field)
	}
	if item.Value.Kind() != settings.KindMapping {
		return d, &TypeMismatchError{
			Path:     fmt.Sprintf("%s.%s", section, item.Key),
			Raw:      item.Value.Kind().String(),
			Expected: "report entry mapping",
		}
	}

	var err error
	if d.SourceType, err = requiredField(item.Value, at, "type"); err != nil {
		return d, err
	}
	if d.VarName, err = requiredField(item.Value, at, "varname"); err != nil {
		return d, err
	}

	format, err := requiredField(item.Value, at, "format")
	if err != nil {
		return d, err
	}
	if d.Format, err = memberOf(at("format"), format, formats); err != nil {
		return d, err
	}

	save, err := requiredField(item.Value, at, "save")
	if err != nil {
		return d, err
	}
	if d.SaveMode, err = memberOf(at("save"), save, saveModes); err != nil {
		return d, err
	}

	// A null or absent function means the variable is reported raw.
	if fn, ok := scalarField(item.Value, "function"); ok && fn != "" {
		if d.Aggregation, err = memberOf(at("function"), fn, aggregations); err != nil {
			return d, err
		}
	}
	if freq, ok := scalarField(item.Value, "frequency"); ok && freq != "" {
		if d.Frequency, err = memberOf(at("frequency"), freq, frequencies); err != nil {
			return d, err
		}
	}
	return d, nil
}

func requiredField(entry *settings.Value, at func(string) string, field string) (string, error) {
	raw, ok := scalarField(entry, field)
	if !ok {
		return "", &MissingRequiredKeyError{Path: at(field)}
	}
	if raw == "" {
		return "", &TypeMismatchError{Path: at(field), Raw: raw, Expected: "non-empty string"}
	}
	return raw, nil
}

func scalarField(entry *settings.Value, field string) (string, bool) {
	v, ok := entry.Lookup(field)
	if !ok {
		return "", false
	}
	return v.Text(), true
}

func memberOf[T ~string](path, raw string, allowed []T) (T, error) {
	for _, candidate := range allowed {
		if T(raw) == candidate {
			return candidate, nil
		}
	}
	names := make([]string, len(allowed))
	for i, candidate := range allowed {
		names[i] = string(candidate)
	}
	var zero T
	return zero, &TypeMismatchError{
		Path:     path,
		Raw:      raw,
		Expected: fmt.Sprintf("one of [%s]", strings.Join(names, ", ")),
	}
}
