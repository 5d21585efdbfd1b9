package render

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed theme.yaml
var defaultThemeYAML []byte

// Theme holds the color palette used by the region renderers. Colors are
// surface color names (CSS/Tk shared vocabulary).
type Theme struct {
	Humanoid struct {
		Skin          string `yaml:"skin"`
		Torso         string `yaml:"torso"`
		TorsoMuscular string `yaml:"torso_muscular"`
		Brace         string `yaml:"brace"`
		Limb          string `yaml:"limb"`
		Joint         string `yaml:"joint"`
		Mouth         string `yaml:"mouth"`
		Name          string `yaml:"name"`
	} `yaml:"humanoid"`
	Heavy struct {
		Plate string `yaml:"plate"`
		Hull  string `yaml:"hull"`
		Leg   string `yaml:"leg"`
		Joint string `yaml:"joint"`
		Name  string `yaml:"name"`
	} `yaml:"heavy"`
	Antenna struct {
		Stalk string `yaml:"stalk"`
		Bulb  string `yaml:"bulb"`
		Core  string `yaml:"core"`
	} `yaml:"antenna"`
}

var (
	themeOnce sync.Once
	theme     Theme
)

// DefaultTheme returns the embedded palette, parsed once per process.
func DefaultTheme() Theme {
	themeOnce.Do(func() {
		if err := yaml.Unmarshal(defaultThemeYAML, &theme); err != nil {
			// The theme ships inside the binary; failing to parse it is a
			// build defect, not a runtime condition.
			panic(fmt.Sprintf("render: bad embedded theme: %v", err))
		}
	})
	return theme
}
