package detector

import (
	"io/fs"
	"log/slog"
	"os"

	"frameworkicons/pkg/detector/packagemanagers"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
)

// Detector resolves the framework of the first open workspace folder.
type Detector struct {
	ws  host.Workspace
	log *slog.Logger
}

func New(ws host.Workspace, log *slog.Logger) *Detector {
	if log == nil {
		log = slog.Default()
	}
	return &Detector{ws: ws, log: log}
}

// Detect returns the label for the current project root, or Unknown when
// no folder is open.
func (d *Detector) Detect() framework.Label {
	return d.DetectResult().Framework
}

// DetectResult is Detect with the matched signals attached.
func (d *Detector) DetectResult() Result {
	folders := d.ws.Folders()
	if len(folders) == 0 {
		return unknownResult("")
	}
	return DetectRoot(folders[0].Path, d.log)
}

// DetectRoot runs the rule chain against a directory on disk.
func DetectRoot(root string, log *slog.Logger) Result {
	res := DetectFS(os.DirFS(root), log)
	res.Root = root
	return res
}

// DetectFS runs the rule chain against fsys. It never fails: unreadable
// files count as absent and a malformed manifest contributes no signal.
func DetectFS(fsys fs.FS, log *slog.Logger) Result {
	if log == nil {
		log = slog.Default()
	}
	reader := NewFSReader(fsys)
	p := &probe{reader: reader}

	res := unknownResult("")
	for _, rule := range Rules {
		if rule.match(p) {
			res.Framework = rule.Label
			res.ThemeID = framework.ThemeID(rule.Label)
			res.Signals = []string{rule.Signal}
			break
		}
	}

	if p.parseErr != nil {
		log.Warn("failed to parse manifest", "file", ManifestFile, "error", p.parseErr)
		res.ManifestError = p.parseErr.Error()
	}
	if reader.Has(ManifestFile) {
		res.PackageManager = packagemanagers.DetectJS(reader)
	}
	return res
}

func unknownResult(root string) Result {
	return Result{
		Root:      root,
		Framework: framework.Unknown,
		ThemeID:   framework.ThemeID(framework.Unknown),
		Signals:   []string{},
	}
}
