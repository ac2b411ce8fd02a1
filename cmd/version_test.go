package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		assert.Contains(t, output, "version: unknown")
		return
	}

	assert.Contains(t, output, "amalgam version")
	assert.Contains(t, output, "go version")
}

func TestVersionLines(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     []string
	}{
		{
			name: "no vcs info",
			want: []string{"amalgam version\t v1.2.0", "go version\t go1.25.1"},
		},
		{
			name:     "clean revision",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}, {Key: "vcs.modified", Value: "false"}},
			want:     []string{"amalgam version\t v1.2.0", "revision\t abc123", "go version\t go1.25.1"},
		},
		{
			name:     "modified revision",
			settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}, {Key: "vcs.revision", Value: "abc123"}},
			want:     []string{"amalgam version\t v1.2.0", "revision\t abc123 (modified)", "go version\t go1.25.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Path: "amalgam.dev/pkg/amalgam", Version: "v1.2.0"},
				Settings:  tt.settings,
			}

			assert.Equal(t, tt.want, versionLines(info))
		})
	}
}
