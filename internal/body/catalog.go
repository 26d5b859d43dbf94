package body

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Spec is the serializable form of a body, used by the YAML config to
// override the built-in catalog. Colors are hex strings.
type Spec struct {
	Name       string  `yaml:"name"`
	Distance   float64 `yaml:"distance"`
	Radius     float64 `yaml:"radius"`
	Color      string  `yaml:"color"`
	OrbitSpeed float64 `yaml:"orbit_speed"`
	SpinSpeed  float64 `yaml:"spin_speed"`
	Satellites []Spec  `yaml:"satellites,omitempty"`
}

// Build converts a Spec tree into a Body tree, parsing colors.
func Build(spec Spec) (Body, error) {
	col, err := colorful.Hex(spec.Color)
	if err != nil {
		return Body{}, fmt.Errorf("body %s: parse color %q: %w", spec.Name, spec.Color, err)
	}
	b := Body{
		Name:       spec.Name,
		Distance:   spec.Distance,
		Radius:     spec.Radius,
		Color:      col,
		OrbitSpeed: spec.OrbitSpeed,
		SpinSpeed:  spec.SpinSpeed,
	}
	for _, s := range spec.Satellites {
		sat, err := Build(s)
		if err != nil {
			return Body{}, err
		}
		b.Satellites = append(b.Satellites, sat)
	}
	return b, nil
}

func mustBuild(spec Spec) Body {
	b, err := Build(spec)
	if err != nil {
		panic(err)
	}
	return b
}

// Catalog values are display-tuned, not to scale: distances compress the
// outer system and speeds are radians per frame at the 60 Hz reference rate.
var sunSpec = Spec{
	Name: "sun", Radius: 8, Color: "#fdb813", SpinSpeed: 0.0008,
	Satellites: []Spec{
		{Name: "mercury", Distance: 12, Radius: 0.9, Color: "#b5b5b5", OrbitSpeed: 0.012, SpinSpeed: 0.004},
		{Name: "venus", Distance: 17, Radius: 1.7, Color: "#e8cda2", OrbitSpeed: 0.0088, SpinSpeed: -0.002},
		{Name: "earth", Distance: 23, Radius: 1.8, Color: "#2e86ab", OrbitSpeed: 0.006, SpinSpeed: 0.02,
			Satellites: []Spec{
				{Name: "moon", Distance: 3.4, Radius: 0.5, Color: "#cfcfcf", OrbitSpeed: 0.08, SpinSpeed: 0.08},
			}},
		{Name: "mars", Distance: 29, Radius: 1.2, Color: "#c1440e", OrbitSpeed: 0.0048, SpinSpeed: 0.018},
		{Name: "jupiter", Distance: 41, Radius: 4.4, Color: "#d8ca9d", OrbitSpeed: 0.0025, SpinSpeed: 0.045,
			Satellites: []Spec{
				{Name: "io", Distance: 6.0, Radius: 0.4, Color: "#ffe08a", OrbitSpeed: 0.12, SpinSpeed: 0.12},
				{Name: "europa", Distance: 7.4, Radius: 0.35, Color: "#d9d2c5", OrbitSpeed: 0.06, SpinSpeed: 0.06},
				{Name: "ganymede", Distance: 9.0, Radius: 0.55, Color: "#9a8f7f", OrbitSpeed: 0.03, SpinSpeed: 0.03},
				{Name: "callisto", Distance: 10.8, Radius: 0.5, Color: "#6f6a5e", OrbitSpeed: 0.016, SpinSpeed: 0.016},
			}},
		{Name: "saturn", Distance: 53, Radius: 3.8, Color: "#e3dccb", OrbitSpeed: 0.0018, SpinSpeed: 0.038,
			Satellites: []Spec{
				{Name: "titan", Distance: 7.2, Radius: 0.55, Color: "#d49a3a", OrbitSpeed: 0.02, SpinSpeed: 0.02},
			}},
		{Name: "uranus", Distance: 64, Radius: 2.9, Color: "#a6d8d4", OrbitSpeed: 0.0012, SpinSpeed: -0.03},
		{Name: "neptune", Distance: 74, Radius: 2.8, Color: "#3f54ba", OrbitSpeed: 0.0009, SpinSpeed: 0.032},
	},
}

// SolarSystem returns the full built-in catalog as a fresh tree.
func SolarSystem() Body {
	return mustBuild(sunSpec)
}

// Preset returns a named subset of the catalog. Known names: full, inner,
// moons.
func Preset(name string) (Body, bool) {
	switch name {
	case "", "full":
		return SolarSystem(), true
	case "inner":
		spec := sunSpec
		spec.Satellites = spec.Satellites[:4]
		return mustBuild(spec), true
	case "moons":
		spec := sunSpec
		kept := make([]Spec, 0, len(spec.Satellites))
		for _, s := range spec.Satellites {
			if len(s.Satellites) > 0 {
				kept = append(kept, s)
			}
		}
		spec.Satellites = kept
		return mustBuild(spec), true
	default:
		return Body{}, false
	}
}

// Presets lists the names Preset accepts.
func Presets() []string {
	return []string{"full", "inner", "moons"}
}
