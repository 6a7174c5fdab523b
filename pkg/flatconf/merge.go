package flatconf

// Merge composes a base set with zero or more override layers, applied
// in the given order with later layers winning. Overriding happens at
// (section, key) granularity: an override value replaces the base value
// entirely. Overrides may introduce new keys and whole new sections,
// which are appended in override order, so a calibration overlay can
// both replace defaults and supply parameters the base never declared.
// Merging happens before interpolation, so an override may provide the
// value a placeholder elsewhere depends on. Inputs are never mutated.
func Merge(base *Set, overlays ...*Set) *Set {
	out := base.Clone()
	for _, layer := range overlays {
		if layer == nil {
			continue
		}
		for _, sec := range layer.sections {
			osec := out.section(sec.Name)
			for _, key := range sec.keys {
				osec.set(key, sec.values[key], sec.lines[key])
			}
		}
	}
	return out
}
