package icons

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"frameworkicons/pkg/framework"
)

const (
	permDirectory = 0755
	permFile      = 0644
)

const folderSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="24px" height="24px" viewBox="0 0 24 24" version="1.1" xmlns="http://www.w3.org/2000/svg">
  <g stroke="none" stroke-width="1" fill="none" fill-rule="evenodd">
    <path d="M10,4H4C2.9,4,2,4.9,2,6v12c0,1.1,0.9,2,2,2h16c1.1,0,2-0.9,2-2V8c0-1.1-0.9-2-2-2h-8L10,4z" fill="%s"></path>
  </g>
</svg>
`

const folderOpenSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="24px" height="24px" viewBox="0 0 24 24" version="1.1" xmlns="http://www.w3.org/2000/svg">
  <g stroke="none" stroke-width="1" fill="none" fill-rule="evenodd">
    <path d="M20,6h-8l-2-2H4C2.9,4,2,4.9,2,6v12c0,1.1,0.9,2,2,2h16c1.1,0,2-0.9,2-2V8C22,6.9,21.1,6,20,6z M20,18H4V8h16V18z" fill="%s" fill-opacity="0.9"></path>
    <path d="M4,8h16v10H4V8z" fill="%s" fill-opacity="0.5"></path>
  </g>
</svg>
`

const fileSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="24px" height="24px" viewBox="0 0 24 24" version="1.1" xmlns="http://www.w3.org/2000/svg">
  <g stroke="none" stroke-width="1" fill="none" fill-rule="evenodd">
    <path d="M14,2H6C4.9,2,4,2.9,4,4v16c0,1.1,0.9,2,2,2h12c1.1,0,2-0.9,2-2V8L14,2z M16,18H8v-2h8V18z M16,14H8v-2h8V14z M13,9V3.5L18.5,9H13z" fill="%s" fill-opacity="0.9"></path>
  </g>
</svg>
`

// FolderSVG renders a closed folder icon.
func FolderSVG(color string) (string, error) {
	c, err := normalizeColor(color)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(folderSVG, c), nil
}

// FolderOpenSVG renders an expanded folder icon.
func FolderOpenSVG(color string) (string, error) {
	c, err := normalizeColor(color)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(folderOpenSVG, c, c), nil
}

// FileSVG renders the generic file icon.
func FileSVG(color string) (string, error) {
	c, err := normalizeColor(color)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(fileSVG, c), nil
}

// WriteThemes writes one theme document per ThemeLabels entry into dir and
// returns the written paths.
func WriteThemes(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, permDirectory); err != nil {
		return nil, fmt.Errorf("failed to create theme directory: %w", err)
	}

	var written []string
	for _, label := range ThemeLabels {
		data, err := json.MarshalIndent(Build(label), "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to marshal %s theme: %w", label, err)
		}
		path := filepath.Join(dir, ThemeFile(label))
		if err := os.WriteFile(path, append(data, '\n'), permFile); err != nil {
			return written, fmt.Errorf("failed to write theme file: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}

type svgFile struct {
	name   string
	render func(color string) (string, error)
	color  string
}

// GenerateSVGs writes every asset the theme documents reference and returns
// the number of files written.
func GenerateSVGs(dir string) (int, error) {
	count := 0
	for _, label := range ThemeLabels {
		assetDir := filepath.Join(dir, AssetDir(label))
		if err := os.MkdirAll(assetDir, permDirectory); err != nil {
			return count, fmt.Errorf("failed to create icon directory: %w", err)
		}

		base := PaletteFor(label).Base
		files := []svgFile{
			{"file.svg", FileSVG, base},
			{"default_folder.svg", FolderSVG, base},
			{"default_folder_open.svg", FolderOpenSVG, base},
		}
		for _, folder := range Folders(label) {
			color := FolderColor(label, folder)
			files = append(files,
				svgFile{folderIcon(folder) + ".svg", FolderSVG, color},
				svgFile{folderExpandedIcon(folder) + ".svg", FolderOpenSVG, color},
			)
		}

		for _, f := range files {
			svg, err := f.render(f.color)
			if err != nil {
				return count, fmt.Errorf("%s/%s: %w", AssetDir(label), f.name, err)
			}
			if err := os.WriteFile(filepath.Join(assetDir, f.name), []byte(svg), permFile); err != nil {
				return count, fmt.Errorf("failed to write icon: %w", err)
			}
			count++
		}
	}
	return count, nil
}

// Scaffold creates an empty placeholder project per framework whose folder
// names exercise the framework specific icons.
func Scaffold(dir string) error {
	for _, label := range []framework.Label{framework.React, framework.Angular, framework.Vue} {
		for _, folder := range frameworkFolders[label] {
			path := filepath.Join(dir, string(label), folder)
			if err := os.MkdirAll(path, permDirectory); err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
		}
	}
	return nil
}
