package detector

import "frameworkicons/pkg/framework"

// Result is the outcome of running the rule chain against one project root.
type Result struct {
	Root           string          `json:"root,omitempty"`
	Framework      framework.Label `json:"framework"`
	ThemeID        string          `json:"theme_id"`
	Signals        []string        `json:"signals"`
	PackageManager string          `json:"package_manager,omitempty"`
	// ManifestError is set when package.json exists but could not be parsed.
	ManifestError string `json:"manifest_error,omitempty"`
}
