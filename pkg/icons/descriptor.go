// Package icons builds the icon theme documents and SVG assets contributed
// for each framework.
package icons

import (
	"fmt"

	"frameworkicons/pkg/framework"
)

const (
	defaultFolderIcon         = "default_folder"
	defaultFolderExpandedIcon = "default_folder_open"
	defaultFileIcon           = "default_file"
)

// ThemeLabels are the frameworks that get their own theme document.
var ThemeLabels = []framework.Label{framework.React, framework.Angular, framework.Vue, framework.Default}

// CommonFolders get an icon in every theme except the default one.
var CommonFolders = []string{"src", "public", "test", "docs", "dist", "build"}

var frameworkFolders = map[framework.Label][]string{
	framework.React:   {"components", "hooks", "contexts", "redux", "services", "pages", "assets"},
	framework.Angular: {"app", "components", "services", "pipes", "directives", "guards", "environments", "assets"},
	framework.Vue:     {"components", "views", "store", "router", "composables", "modules", "assets"},
}

// aliases map alternative folder names onto an existing icon.
var aliases = map[framework.Label]map[string]string{
	framework.React: {"context": "contexts", "store": "redux"},
}

type IconDefinition struct {
	IconPath string `json:"iconPath"`
}

type FolderAssociation struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// Variant overrides folder icons for light and high contrast colour themes.
type Variant struct {
	Folder              string            `json:"folder"`
	FolderExpanded      string            `json:"folderExpanded"`
	FolderNames         map[string]string `json:"folderNames"`
	FolderNamesExpanded map[string]string `json:"folderNamesExpanded"`
}

// Descriptor is an icon theme document.
type Descriptor struct {
	IconDefinitions     map[string]IconDefinition `json:"iconDefinitions"`
	Folder              string                    `json:"folder"`
	FolderExpanded      string                    `json:"folderExpanded"`
	Folders             []FolderAssociation       `json:"folders"`
	FoldersExpanded     []FolderAssociation       `json:"foldersExpanded"`
	FolderNames         map[string]string         `json:"folderNames"`
	FolderNamesExpanded map[string]string         `json:"folderNamesExpanded"`
	File                string                    `json:"file"`
	FileExtensions      map[string]string         `json:"fileExtensions"`
	FileNames           map[string]string         `json:"fileNames"`
	LanguageIDs         map[string]string         `json:"languageIds"`
	RootFolder          string                    `json:"rootFolder"`
	RootFolderExpanded  string                    `json:"rootFolderExpanded"`
	Light               *Variant                  `json:"light,omitempty"`
	HighContrast        *Variant                  `json:"highContrast,omitempty"`
}

// AssetDir is the asset directory of a theme, relative to the theme document.
func AssetDir(label framework.Label) string {
	if _, ok := frameworkFolders[label]; ok {
		return string(label)
	}
	return string(framework.Default)
}

// ThemeFile is the theme document name of a label.
func ThemeFile(label framework.Label) string {
	return fmt.Sprintf("%s-icon-theme.json", AssetDir(label))
}

// Folders lists the folder names with a dedicated icon, in document order.
func Folders(label framework.Label) []string {
	if AssetDir(label) == string(framework.Default) {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, f := range append(append([]string{}, CommonFolders...), frameworkFolders[label]...) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func folderIcon(name string) string         { return "folder_" + name }
func folderExpandedIcon(name string) string { return "folder_" + name + "_open" }

// Build assembles the theme document of label.
func Build(label framework.Label) Descriptor {
	dir := AssetDir(label)
	asset := func(file string) IconDefinition {
		return IconDefinition{IconPath: fmt.Sprintf("./%s/%s", dir, file)}
	}

	d := Descriptor{
		IconDefinitions: map[string]IconDefinition{
			defaultFolderIcon:         asset("default_folder.svg"),
			defaultFolderExpandedIcon: asset("default_folder_open.svg"),
			defaultFileIcon:           asset("file.svg"),
		},
		Folder:              defaultFolderIcon,
		FolderExpanded:      defaultFolderExpandedIcon,
		Folders:             []FolderAssociation{{Icon: defaultFolderIcon, Name: "*"}},
		FoldersExpanded:     []FolderAssociation{{Icon: defaultFolderExpandedIcon, Name: "*"}},
		FolderNames:         map[string]string{},
		FolderNamesExpanded: map[string]string{},
		File:                defaultFileIcon,
		FileExtensions:      map[string]string{},
		FileNames:           map[string]string{},
		LanguageIDs:         map[string]string{},
		RootFolder:          defaultFolderIcon,
		RootFolderExpanded:  defaultFolderExpandedIcon,
	}
	light := &Variant{
		Folder:              defaultFolderIcon,
		FolderExpanded:      defaultFolderExpandedIcon,
		FolderNames:         map[string]string{},
		FolderNamesExpanded: map[string]string{},
	}
	contrast := &Variant{
		Folder:              defaultFolderIcon,
		FolderExpanded:      defaultFolderExpandedIcon,
		FolderNames:         map[string]string{},
		FolderNamesExpanded: map[string]string{},
	}

	assign := func(name, target string) {
		icon, expanded := folderIcon(target), folderExpandedIcon(target)
		for _, names := range []map[string]string{d.FolderNames, light.FolderNames, contrast.FolderNames} {
			names[name] = icon
		}
		for _, names := range []map[string]string{d.FolderNamesExpanded, light.FolderNamesExpanded, contrast.FolderNamesExpanded} {
			names[name] = expanded
		}
	}

	for _, name := range Folders(label) {
		d.IconDefinitions[folderIcon(name)] = asset(folderIcon(name) + ".svg")
		d.IconDefinitions[folderExpandedIcon(name)] = asset(folderExpandedIcon(name) + ".svg")
		assign(name, name)
	}
	for alias, target := range aliases[label] {
		assign(alias, target)
	}

	d.Light = light
	d.HighContrast = contrast
	return d
}
