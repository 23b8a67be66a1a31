package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"frameworkicons/pkg/host"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

// ErrNoWorkspace is returned for workspace-scoped writes when no folder is open.
var ErrNoWorkspace = errors.New("no workspace folder is open")

// GetUserSettingsPath returns the user settings file, honouring UserSettingsEnv.
func GetUserSettingsPath() string {
	if p := os.Getenv(UserSettingsEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(EditorConfigDir, "User", SettingsFile)
		}
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, EditorConfigDir, "User", SettingsFile)
}

// GetWorkspaceSettingsPath returns the settings file of a project root.
func GetWorkspaceSettingsPath(root string) string {
	return filepath.Join(root, WorkspaceSettingsDir, SettingsFile)
}

// Store reads and writes editor settings documents. Documents are JSON with
// comments and trailing commas; edits keep the existing comments.
type Store struct {
	mu            sync.Mutex
	userPath      string
	workspacePath string
}

// NewStore creates a store. An empty workspacePath means no folder is open.
// Relative paths are resolved against the working directory.
func NewStore(userPath, workspacePath string) *Store {
	return &Store{userPath: absPath(userPath), workspacePath: absPath(workspacePath)}
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Paths returns the files backing the store; the workspace path may be empty.
func (s *Store) Paths() (user, workspace string) {
	return s.userPath, s.workspacePath
}

func (s *Store) pathFor(scope host.Scope) (string, error) {
	if scope == host.ScopeGlobal {
		return s.userPath, nil
	}
	if s.workspacePath == "" {
		return "", ErrNoWorkspace
	}
	return s.workspacePath, nil
}

// Get resolves key from workspace settings first, then user settings.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range []string{s.workspacePath, s.userPath} {
		if path == "" {
			continue
		}
		doc, err := readStandard(path)
		if err != nil || doc == nil {
			continue
		}
		if v, ok := lookup(doc, key); ok {
			return v, true
		}
	}
	return nil, false
}

// Update writes value under key in the file selected by scope.
func (s *Store) Update(ctx context.Context, key string, value any, scope host.Scope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.pathFor(scope)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		data = []byte("{}")
	}

	out, err := setKey(data, key, value)
	if err != nil {
		return fmt.Errorf("failed to update %s in %s: %w", key, path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), PermDirectory); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, out, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Snapshot returns every setting of both documents as dotted keys, workspace
// values shadowing user values key by key. Nested objects are flattened, so
// {"workbench": {"iconTheme": "x"}} and {"workbench.iconTheme": "x"} give the
// same snapshot. Unreadable documents contribute nothing.
func (s *Store) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := map[string]any{}
	for _, path := range []string{s.userPath, s.workspacePath} {
		if path == "" {
			continue
		}
		doc, err := readStandard(path)
		if err != nil || doc == nil {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(doc, &m); err != nil {
			continue
		}
		flatten("", m, merged)
	}
	return merged
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// readStandard returns the document as plain JSON, or nil when the file is missing.
func readStandard(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	return hujson.Standardize(data)
}

// lookup finds a flat dotted key first ("a.b": 1), then the nested form
// ({"a": {"b": 1}}).
func lookup(doc []byte, key string) (any, bool) {
	if r := gjson.GetBytes(doc, escapeGJSON(key)); r.Exists() {
		return r.Value(), true
	}
	if strings.Contains(key, ".") {
		if r := gjson.GetBytes(doc, key); r.Exists() {
			return r.Value(), true
		}
	}
	return nil, false
}

func setKey(data []byte, key string, value any) ([]byte, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	ptr := "/" + escapePointer(key)
	op := "add"
	if v.Find(ptr) != nil {
		op = "replace"
	}
	patch := fmt.Sprintf(`[{"op":%q,"path":%q,"value":%s}]`, op, ptr, raw)
	if err := v.Patch([]byte(patch)); err != nil {
		return nil, err
	}

	v.Format()
	return v.Pack(), nil
}

var gjsonEscaper = strings.NewReplacer(
	`\`, `\\`, ".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`,
)

func escapeGJSON(key string) string {
	return gjsonEscaper.Replace(key)
}

// escapePointer escapes a key for use as an RFC 6901 reference token.
func escapePointer(key string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
}
