package theme

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"frameworkicons/pkg/config"
	"frameworkicons/pkg/detector"
	"frameworkicons/pkg/framework"
	"frameworkicons/pkg/host"
	"frameworkicons/pkg/host/hosttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

type countingDetector struct {
	label framework.Label
	calls int
}

func (d *countingDetector) Detect() framework.Label {
	d.calls++
	return d.label
}

func themeUpdates(c *hosttest.Config) []string {
	var ids []string
	for _, u := range c.UpdatesFor(config.KeyIconTheme) {
		ids = append(ids, u.Value.(string))
	}
	return ids
}

func TestApplier_IdempotentForSameLabel(t *testing.T) {
	cfg := hosttest.NewConfig(nil)
	a := NewApplier(cfg, &countingDetector{}, quietLogger())
	ctx := context.Background()

	a.Apply(ctx, framework.React)
	a.Apply(ctx, framework.React)

	assert.Equal(t, []string{"framework-icons-react"}, themeUpdates(cfg))
	assert.Equal(t, host.ScopeWorkspace, cfg.Updates()[0].Scope)
}

func TestApplier_OnlyRemembersPreviousLabel(t *testing.T) {
	cfg := hosttest.NewConfig(nil)
	a := NewApplier(cfg, &countingDetector{}, quietLogger())
	ctx := context.Background()

	a.Apply(ctx, framework.Angular)
	a.Apply(ctx, framework.Vue)
	a.Apply(ctx, framework.Angular)

	assert.Equal(t, []string{
		"framework-icons-angular",
		"framework-icons-vue",
		"framework-icons-angular",
	}, themeUpdates(cfg))
}

func TestApplier_AutoUsesDetector(t *testing.T) {
	cfg := hosttest.NewConfig(nil)
	det := &countingDetector{label: framework.Vue}
	a := NewApplier(cfg, det, quietLogger())

	a.Apply(context.Background(), framework.Auto)

	assert.Equal(t, 1, det.calls)
	assert.Equal(t, []string{"framework-icons-vue"}, themeUpdates(cfg))
	current, ok := a.Current()
	assert.True(t, ok)
	assert.Equal(t, framework.Vue, current)
}

func TestApplier_AutoThenResolvedLabelIsIdempotent(t *testing.T) {
	cfg := hosttest.NewConfig(nil)
	a := NewApplier(cfg, &countingDetector{label: framework.React}, quietLogger())
	ctx := context.Background()

	a.Apply(ctx, framework.Auto)
	a.Apply(ctx, framework.React)

	assert.Len(t, themeUpdates(cfg), 1)
}

func TestApplier_UnknownLabelsUseDefaultTheme(t *testing.T) {
	for _, l := range []framework.Label{framework.Unknown, framework.Default, "svelte"} {
		cfg := hosttest.NewConfig(nil)
		a := NewApplier(cfg, &countingDetector{}, quietLogger())

		a.Apply(context.Background(), l)

		assert.Equal(t, []string{framework.DefaultThemeID}, themeUpdates(cfg), string(l))
	}
}

func TestApplier_UpdateFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	cfg := hosttest.NewConfig(nil)
	cfg.Err = errors.New("settings are read-only")
	a := NewApplier(cfg, &countingDetector{}, slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	assert.NotPanics(t, func() { a.Apply(ctx, framework.React) })
	assert.Contains(t, buf.String(), "failed to update icon theme")

	// The label counts as applied even though the write failed.
	current, ok := a.Current()
	assert.True(t, ok)
	assert.Equal(t, framework.React, current)

	a.Apply(ctx, framework.React)
	assert.Len(t, cfg.UpdatesFor(config.KeyIconTheme), 1)
}

func TestApplier_CurrentUnsetInitially(t *testing.T) {
	a := NewApplier(hosttest.NewConfig(nil), &countingDetector{}, quietLogger())
	_, ok := a.Current()
	assert.False(t, ok)
}

func TestApplier_IndependentInstances(t *testing.T) {
	cfg := hosttest.NewConfig(nil)
	ctx := context.Background()

	NewApplier(cfg, &countingDetector{}, quietLogger()).Apply(ctx, framework.Vue)
	NewApplier(cfg, &countingDetector{}, quietLogger()).Apply(ctx, framework.Vue)

	assert.Len(t, themeUpdates(cfg), 2)
}

func TestSelector_Request(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		expected framework.Label
		enabled  bool
	}{
		{
			name:     "defaults",
			values:   nil,
			expected: framework.Auto,
			enabled:  true,
		},
		{
			name:    "disabled",
			values:  map[string]any{config.KeyEnabled: false},
			enabled: false,
		},
		{
			name: "manual label",
			values: map[string]any{
				config.KeyDetectFramework: false,
				config.KeyManualFramework: "angular",
			},
			expected: framework.Angular,
			enabled:  true,
		},
		{
			name: "manual auto",
			values: map[string]any{
				config.KeyDetectFramework: false,
				config.KeyManualFramework: "auto",
			},
			expected: framework.Auto,
			enabled:  true,
		},
		{
			name: "detection wins over manual label",
			values: map[string]any{
				config.KeyDetectFramework: true,
				config.KeyManualFramework: "vue",
			},
			expected: framework.Auto,
			enabled:  true,
		},
		{
			name: "unlisted manual value passes through",
			values: map[string]any{
				config.KeyDetectFramework: false,
				config.KeyManualFramework: "svelte",
			},
			expected: "svelte",
			enabled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := hosttest.NewConfig(tt.values)
			s := NewSelector(cfg, NewApplier(cfg, &countingDetector{}, quietLogger()), quietLogger())

			label, enabled := s.Request()
			assert.Equal(t, tt.enabled, enabled)
			if tt.enabled {
				assert.Equal(t, tt.expected, label)
			}
		})
	}
}

func TestSelector_DisabledDoesNothing(t *testing.T) {
	cfg := hosttest.NewConfig(map[string]any{config.KeyEnabled: false})
	det := &countingDetector{label: framework.React}
	s := NewSelector(cfg, NewApplier(cfg, det, quietLogger()), quietLogger())

	s.Refresh(context.Background())

	assert.Equal(t, 0, det.calls)
	assert.Empty(t, cfg.Updates())
}

func TestSelector_ManualAutoResolvesThroughDetector(t *testing.T) {
	cfg := hosttest.NewConfig(map[string]any{
		config.KeyDetectFramework: false,
		config.KeyManualFramework: "auto",
	})
	det := &countingDetector{label: framework.Angular}
	s := NewSelector(cfg, NewApplier(cfg, det, quietLogger()), quietLogger())

	s.Refresh(context.Background())

	assert.Equal(t, 1, det.calls)
	assert.Equal(t, []string{"framework-icons-angular"}, themeUpdates(cfg))
}

func createTestProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

func TestScenario_EmptyRootUsesDefaultTheme(t *testing.T) {
	root := createTestProject(t, nil)
	cfg := hosttest.NewConfig(map[string]any{
		config.KeyEnabled:         true,
		config.KeyDetectFramework: true,
	})
	det := detector.New(hosttest.NewWorkspace(root), quietLogger())
	s := NewSelector(cfg, NewApplier(cfg, det, quietLogger()), quietLogger())

	s.Refresh(context.Background())

	assert.Equal(t, []string{framework.DefaultThemeID}, themeUpdates(cfg))
	current, _ := s.Applier().Current()
	assert.Equal(t, framework.Unknown, current)
}

func TestScenario_VueManifest(t *testing.T) {
	root := createTestProject(t, map[string]string{
		"package.json": `{"dependencies": {"vue": "^3.0.0"}}`,
	})
	cfg := hosttest.NewConfig(nil)
	det := detector.New(hosttest.NewWorkspace(root), quietLogger())
	s := NewSelector(cfg, NewApplier(cfg, det, quietLogger()), quietLogger())

	s.Refresh(context.Background())
	s.Refresh(context.Background())

	assert.Equal(t, []string{"framework-icons-vue"}, themeUpdates(cfg))
}

func TestScenario_DisabledIgnoresWorkspace(t *testing.T) {
	root := createTestProject(t, map[string]string{"angular.json": "{}"})
	cfg := hosttest.NewConfig(map[string]any{config.KeyEnabled: false})
	det := detector.New(hosttest.NewWorkspace(root), quietLogger())
	s := NewSelector(cfg, NewApplier(cfg, det, quietLogger()), quietLogger())

	s.Refresh(context.Background())

	assert.Empty(t, cfg.Updates())
}
