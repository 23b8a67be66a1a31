package icons

import (
	"fmt"

	"frameworkicons/pkg/framework"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is used for folders no palette mentions.
const FallbackColor = "#607D8B"

// Palette holds the base colour of a theme and per-folder overrides.
type Palette struct {
	Base    string
	Folders map[string]string
}

var commonColors = map[string]string{
	"src":    "#42A5F5",
	"public": "#66BB6A",
	"test":   "#EF5350",
	"docs":   "#7E57C2",
	"dist":   "#78909C",
	"build":  "#78909C",
}

var palettes = map[framework.Label]Palette{
	framework.React: {
		Base: "#61DAFB",
		Folders: map[string]string{
			"components": "#1976D2",
			"hooks":      "#4CAF50",
			"contexts":   "#9C27B0",
			"assets":     "#FF9800",
			"services":   "#795548",
			"redux":      "#764ABC",
			"pages":      "#00BCD4",
		},
	},
	framework.Angular: {
		Base: "#DD0031",
		Folders: map[string]string{
			"src":          "#F44336",
			"app":          "#4CAF50",
			"assets":       "#2196F3",
			"environments": "#FFEB3B",
			"services":     "#795548",
			"directives":   "#FF5722",
			"pipes":        "#607D8B",
			"components":   "#3F51B5",
		},
	},
	framework.Vue: {
		Base: "#4FC08D",
		Folders: map[string]string{
			"components":  "#4CAF50",
			"views":       "#2196F3",
			"store":       "#FFEB3B",
			"assets":      "#9C27B0",
			"composables": "#FF9800",
			"router":      "#795548",
			"modules":     "#607D8B",
		},
	},
	framework.Default: {
		Base:    FallbackColor,
		Folders: map[string]string{},
	},
}

// PaletteFor returns the palette of label; labels without one share the
// default palette.
func PaletteFor(label framework.Label) Palette {
	if p, ok := palettes[label]; ok {
		return p
	}
	return palettes[framework.Default]
}

// FolderColor resolves a folder colour: framework palette, then the common
// folder colours, then FallbackColor.
func FolderColor(label framework.Label, folder string) string {
	if c, ok := PaletteFor(label).Folders[folder]; ok {
		return c
	}
	if c, ok := commonColors[folder]; ok {
		return c
	}
	return FallbackColor
}

// normalizeColor validates a hex colour and returns it in #rrggbb form.
func normalizeColor(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return c.Hex(), nil
}
