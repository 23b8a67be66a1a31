package framework

import (
	"errors"
	"fmt"
	"strings"
)

// Label identifies a front-end framework family.
type Label string

const (
	React   Label = "react"
	Angular Label = "angular"
	Vue     Label = "vue"
	Unknown Label = "unknown"
	Default Label = "default"

	// Auto is not a framework: it defers the choice to the detector.
	Auto Label = "auto"
)

// ErrUnknownLabel is returned by ParseLabel for values outside the label set.
var ErrUnknownLabel = errors.New("unknown framework label")

// DefaultThemeID is used for every label without a dedicated icon theme.
const DefaultThemeID = "framework-icons-default"

var themeIDs = map[Label]string{
	React:   "framework-icons-react",
	Angular: "framework-icons-angular",
	Vue:     "framework-icons-vue",
	Unknown: DefaultThemeID,
}

// CycleOrder is the sequence offered by the status bar cycle action.
var CycleOrder = []Label{React, Angular, Vue, Default}

// ParseLabel converts a configuration value into a Label.
func ParseLabel(s string) (Label, error) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case React, Angular, Vue, Unknown, Default, Auto:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// ThemeID maps a label to the icon theme identifier contributed for it.
func ThemeID(l Label) string {
	if id, ok := themeIDs[l]; ok {
		return id
	}
	return DefaultThemeID
}

// FromThemeID infers a cycle label from an arbitrary icon theme identifier by
// substring match. Themes that mention no known framework map to Default.
func FromThemeID(id string) Label {
	switch {
	case strings.Contains(id, string(React)):
		return React
	case strings.Contains(id, string(Angular)):
		return Angular
	case strings.Contains(id, string(Vue)):
		return Vue
	}
	return Default
}

// CycleIndex returns the position of l in CycleOrder, or -1.
func CycleIndex(l Label) int {
	for i, c := range CycleOrder {
		if c == l {
			return i
		}
	}
	return -1
}

// StatusIcon returns the codicon shown next to the label in the status bar.
func StatusIcon(l Label) string {
	switch l {
	case React:
		return "$(zap)"
	case Angular:
		return "$(flame)"
	case Vue:
		return "$(beaker)"
	default:
		return "$(file-code)"
	}
}

func (l Label) String() string {
	return string(l)
}
