package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionSet(t *testing.T) {
	set := NewExclusionSet("main.cpp", " ", "", "*_test.cpp", "gen/**", "[bad")

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"main.cpp", "*_test.cpp", "gen/**", "[bad"}, set.Patterns())

	tests := []struct {
		name string
		want bool
	}{
		{"main.cpp", true},
		{"other.cpp", false},
		{"parser_test.cpp", true},
		{"parser_test.h", false},
		{"[bad", true},
		{"bad", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Excludes(tt.name))
		})
	}
}

func TestExclusionSet_Empty(t *testing.T) {
	set := NewExclusionSet()

	assert.Zero(t, set.Len())
	assert.False(t, set.Excludes("a.h"))
}

func TestExclusionSet_WithPaths(t *testing.T) {
	base := NewExclusionSet("skip.h")
	set := base.WithPaths("/work/src/merged.h", "")

	assert.True(t, set.ExcludesPath("/work/src/merged.h"))
	assert.False(t, set.ExcludesPath("/work/src/a.h"))
	assert.False(t, set.ExcludesPath(""))
	assert.True(t, set.Excludes("skip.h"))
	assert.False(t, base.ExcludesPath("/work/src/merged.h"))
}
