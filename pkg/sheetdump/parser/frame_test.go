package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFrame(t *testing.T) {
	rows := [][]string{
		{"A", "B"},
		{"1"},
		{"x", "y"},
	}

	frame := BuildFrame(rows)

	assert.Equal(t, []string{"A", "B"}, frame.Columns)
	assert.Equal(t, [][]string{{"1", ""}, {"x", "y"}}, frame.Rows)
}

func TestBuildFrameSkipsBlankRows(t *testing.T) {
	rows := [][]string{
		nil,
		{"", ""},
		{"Name", "Qty"},
		{},
		{"apple", "3"},
	}

	frame := BuildFrame(rows)

	assert.Equal(t, []string{"Name", "Qty"}, frame.Columns)
	assert.Equal(t, [][]string{{"apple", "3"}}, frame.Rows)
}

func TestBuildFrameWideDataRow(t *testing.T) {
	rows := [][]string{
		{"A"},
		{"1", "2", "3"},
	}

	frame := BuildFrame(rows)

	assert.Equal(t, []string{"A", "Unnamed: 1", "Unnamed: 2"}, frame.Columns)
	assert.Equal(t, [][]string{{"1", "2", "3"}}, frame.Rows)
}

func TestBuildFrameEmpty(t *testing.T) {
	for _, rows := range [][][]string{nil, {}, {{""}, nil}} {
		frame := BuildFrame(rows)
		assert.Empty(t, frame.Columns)
		assert.True(t, frame.IsEmpty())
	}
}

func TestBuildFrameHeaderOnly(t *testing.T) {
	frame := BuildFrame([][]string{{"A", "", "C"}})

	assert.Equal(t, []string{"A", "Unnamed: 1", "C"}, frame.Columns)
	assert.True(t, frame.IsEmpty())
}

func TestBuildFrameKeepsWhitespaceCells(t *testing.T) {
	frame := BuildFrame([][]string{{"A", "B"}, {" ", ""}})

	assert.Equal(t, [][]string{{" ", ""}}, frame.Rows)
}

func TestDedupeLabels(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"A", "B"}, []string{"A", "B"}},
		{[]string{"A", "A", "A"}, []string{"A", "A.1", "A.2"}},
		{[]string{"A", "A", "A.1"}, []string{"A", "A.1", "A.1.1"}},
		{[]string{"A.1", "A", "A"}, []string{"A.1", "A", "A.2"}},
	}

	for _, tt := range tests {
		result := dedupeLabels(tt.input)
		assert.Equal(t, tt.expected, result, "dedupeLabels(%q)", tt.input)
	}
}

func TestTrimRow(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"a", "", ""}, []string{"a"}},
		{[]string{"", "b"}, []string{"", "b"}},
		{[]string{"", ""}, []string{}},
		{nil, nil},
	}

	for _, tt := range tests {
		result := trimRow(tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("trimRow(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
