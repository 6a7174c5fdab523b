package flatconf

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestInterpolate_PlaceholderFreeIsNoop_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("interpolating a placeholder-free set is a no-op", prop.ForAll(
		func(a, b map[string]string) bool {
			set := NewSet()
			for key, value := range a {
				set.set("ALPHA", key, value, 0)
			}
			for key, value := range b {
				set.set("BETA", key, value, 0)
			}

			resolved, err := set.Interpolate()
			if err != nil {
				return false
			}
			again, err := resolved.Interpolate()
			if err != nil {
				return false
			}
			return resolved.Equal(set) && again.Equal(resolved)
		},
		gen.MapOf(gen.Identifier(), gen.AlphaString()),
		gen.MapOf(gen.Identifier(), gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func TestInterpolate_DeclarationOrderIrrelevant_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// A fixed acyclic reference chain spread over three sections. The
	// sections are declared in every rotation of their order; resolved
	// values must not change.
	sections := []struct {
		name string
		keys [][2]string
	}{
		{"PATHS", [][2]string{{"root", "DataDrive"}, {"maps", "$(root)/maps"}}},
		{"METEO", [][2]string{{"pr", "$(PATHS:maps)/pr.nc"}}},
		{"ROUTING", [][2]string{{"ldd", "$(PATHS:maps)/ldd.map"}, {"both", "$(METEO:pr)+$(ldd)"}}},
	}

	properties.Property("section declaration order does not change the result", prop.ForAll(
		func(rotation int) bool {
			set := NewSet()
			n := len(sections)
			for i := 0; i < n; i++ {
				sec := sections[(i+rotation)%n]
				for _, kv := range sec.keys {
					set.set(sec.name, kv[0], kv[1], 0)
				}
			}

			resolved, err := set.Interpolate()
			if err != nil {
				return false
			}
			maps, _ := resolved.Get("PATHS", "maps")
			pr, _ := resolved.Get("METEO", "pr")
			both, _ := resolved.Get("ROUTING", "both")
			return maps == "DataDrive/maps" &&
				pr == "DataDrive/maps/pr.nc" &&
				both == "DataDrive/maps/pr.nc+DataDrive/maps/ldd.map"
		},
		gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}
