package detector

import (
	"errors"
	"fmt"
	"strings"

	"frameworkicons/pkg/framework"

	"github.com/tidwall/gjson"
)

const (
	ManifestFile = "package.json"

	angularMarker = "angular.json"
	vueMarker     = "vue.config.js"
)

var errInvalidManifest = errors.New("invalid JSON")

// Rule maps one marker to a framework label.
type Rule struct {
	Label  framework.Label
	Signal string
	match  func(p *probe) bool
}

// FileRule matches when path exists at the project root.
func FileRule(path string, label framework.Label) Rule {
	return Rule{
		Label:  label,
		Signal: path,
		match:  func(p *probe) bool { return p.reader.Has(path) },
	}
}

// DependencyRule matches when the manifest declares any of keys in its
// runtime or development dependencies.
func DependencyRule(label framework.Label, keys ...string) Rule {
	return Rule{
		Label:  label,
		Signal: fmt.Sprintf("%s has %s", ManifestFile, strings.Join(keys, " or ")),
		match: func(p *probe) bool {
			deps := p.dependencies()
			for _, k := range keys {
				if _, ok := deps[k]; ok {
					return true
				}
			}
			return false
		},
	}
}

// Rules is the detection chain in priority order. Marker files always
// outrank manifest dependencies.
var Rules = []Rule{
	FileRule(angularMarker, framework.Angular),
	FileRule(vueMarker, framework.Vue),
	DependencyRule(framework.Angular, "@angular/core"),
	DependencyRule(framework.Vue, "vue"),
	DependencyRule(framework.React, "react", "react-dom"),
}

// probe caches the parsed manifest for one detection pass.
type probe struct {
	reader   *FSReader
	parsed   bool
	deps     map[string]struct{}
	parseErr error
}

func (p *probe) dependencies() map[string]struct{} {
	if p.parsed {
		return p.deps
	}
	p.parsed = true

	if !p.reader.Has(ManifestFile) {
		return nil
	}
	data, err := p.reader.ReadBytes(ManifestFile)
	if err != nil {
		return nil
	}
	p.deps, p.parseErr = ParseDependencies(data)
	return p.deps
}

// ParseDependencies returns the union of the keys under "dependencies" and
// "devDependencies". Sections that are not objects are ignored.
func ParseDependencies(data []byte) (map[string]struct{}, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidManifest
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("expected a JSON object, got %s", doc.Type)
	}

	deps := map[string]struct{}{}
	for _, section := range []string{"dependencies", "devDependencies"} {
		v := doc.Get(section)
		if !v.IsObject() {
			continue
		}
		v.ForEach(func(key, _ gjson.Result) bool {
			deps[key.String()] = struct{}{}
			return true
		})
	}
	return deps, nil
}
