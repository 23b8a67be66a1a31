package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    Label
		wantErr bool
	}{
		{"react", React, false},
		{" Angular ", Angular, false},
		{"VUE", Vue, false},
		{"auto", Auto, false},
		{"default", Default, false},
		{"unknown", Unknown, false},
		{"svelte", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLabel(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownLabel))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeID(t *testing.T) {
	assert.Equal(t, "framework-icons-react", ThemeID(React))
	assert.Equal(t, "framework-icons-angular", ThemeID(Angular))
	assert.Equal(t, "framework-icons-vue", ThemeID(Vue))
	assert.Equal(t, DefaultThemeID, ThemeID(Unknown))
	assert.Equal(t, DefaultThemeID, ThemeID(Default))
	assert.Equal(t, DefaultThemeID, ThemeID(Label("svelte")))
}

func TestFromThemeID(t *testing.T) {
	tests := map[string]Label{
		"framework-icons-react":   React,
		"framework-icons-angular": Angular,
		"framework-icons-vue":     Vue,
		"framework-icons-default": Default,
		"vs-seti":                 Default,
		"":                        Default,
	}
	for id, want := range tests {
		assert.Equal(t, want, FromThemeID(id), id)
	}
}

func TestCycleIndex(t *testing.T) {
	assert.Equal(t, 0, CycleIndex(React))
	assert.Equal(t, 3, CycleIndex(Default))
	assert.Equal(t, -1, CycleIndex(Unknown))
}

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "$(zap)", StatusIcon(React))
	assert.Equal(t, "$(flame)", StatusIcon(Angular))
	assert.Equal(t, "$(beaker)", StatusIcon(Vue))
	assert.Equal(t, "$(file-code)", StatusIcon(Default))
}
