package icons

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RequiredFields must be present in every theme document.
var RequiredFields = []string{
	"iconDefinitions",
	"folderNames",
	"folderNamesExpanded",
	"folders",
	"foldersExpanded",
	"file",
	"rootFolder",
	"rootFolderExpanded",
}

// RequiredAssets must exist in every asset directory.
var RequiredAssets = []string{"default_folder.svg", "default_folder_open.svg", "file.svg"}

// Problem is one defect found by CheckThemes or VerifyAssets.
type Problem struct {
	File    string
	Message string
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.File, p.Message)
}

// CheckThemes validates the theme documents in dir: each must exist, parse,
// carry RequiredFields and point only at existing icon files.
func CheckThemes(dir string) []Problem {
	var problems []Problem
	for _, label := range ThemeLabels {
		name := ThemeFile(label)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			problems = append(problems, Problem{name, "theme file not found"})
			continue
		}

		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			problems = append(problems, Problem{name, fmt.Sprintf("invalid JSON: %v", err)})
			continue
		}

		var missing []string
		for _, field := range RequiredFields {
			if _, ok := doc[field]; !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			problems = append(problems, Problem{name, fmt.Sprintf("missing required fields: %v", missing)})
			continue
		}

		var defs map[string]IconDefinition
		if err := json.Unmarshal(doc["iconDefinitions"], &defs); err != nil {
			problems = append(problems, Problem{name, fmt.Sprintf("invalid iconDefinitions: %v", err)})
			continue
		}
		ids := make([]string, 0, len(defs))
		for id := range defs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(defs[id].IconPath))); err != nil {
				problems = append(problems, Problem{name, fmt.Sprintf("icon %s points at missing file %s", id, defs[id].IconPath)})
			}
		}
	}
	return problems
}

// VerifyAssets checks that every asset directory holds RequiredAssets.
func VerifyAssets(dir string) []Problem {
	var problems []Problem
	for _, label := range ThemeLabels {
		assetDir := AssetDir(label)
		if fi, err := os.Stat(filepath.Join(dir, assetDir)); err != nil || !fi.IsDir() {
			problems = append(problems, Problem{assetDir, "icon directory does not exist"})
			continue
		}
		for _, asset := range RequiredAssets {
			if _, err := os.Stat(filepath.Join(dir, assetDir, asset)); err != nil {
				problems = append(problems, Problem{assetDir + "/" + asset, "icon is missing"})
			}
		}
	}
	return problems
}
