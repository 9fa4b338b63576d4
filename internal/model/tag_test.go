package model

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    []string{"Web-API", "C++"},
			expected: []string{"webapi", "c"},
		},
		{
			name:     "deduplicates preserving order",
			input:    []string{"api", "CLI", "Api"},
			expected: []string{"api", "cli"},
		},
		{
			name:     "drops empties",
			input:    []string{"", "  ", "---", "go"},
			expected: []string{"go"},
		},
		{
			name:     "caps at three tags",
			input:    []string{"one", "two", "three", "four"},
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "keeps digits",
			input:    []string{"Vue3"},
			expected: []string{"vue3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTags(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
