package article

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *Index {
	return &Index{
		Words: Dictionary{"cat", "dog", "war"},
		Articles: []Article{
			{Title: "Felix", Words: []int{0}},
			{Title: "Rex", Words: []int{1}},
			{Title: "World_War_I", Words: []int{2}},
			{Title: "Cold_War", Words: []int{2}},
			{Title: "Rome", Words: nil},
		},
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name     string
		redacted string
		expected Pattern
	}{
		{"empty", "", Pattern{}},
		{"blank", "   ", Pattern{}},
		{"one word", "███", Pattern{3}},
		{"two words", "███ █████", Pattern{3, 5}},
		{"ascii placeholders", "xxxxx xxx x", Pattern{5, 3, 1}},
		{"repeated spaces", "██  ██", Pattern{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePattern(tt.redacted))
		})
	}
}

func TestTitlePattern(t *testing.T) {
	assert.Equal(t, Pattern{5}, TitlePattern("Felix"))
	assert.Equal(t, Pattern{5, 3, 1}, TitlePattern("World_War_I"))
	assert.Equal(t, Pattern{6}, TitlePattern("Zürich"))
	assert.Equal(t, Pattern{0}, TitlePattern(""))
}

func TestFilterEmptyPatternMatchesAll(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, idx.Titles(), Filter(idx, Pattern{}))
	assert.Equal(t, idx.Titles(), Filter(idx, ParsePattern("")))
}

func TestFilterExact(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		pattern  Pattern
		expected []string
	}{
		{Pattern{3}, []string{"Rex"}},
		{Pattern{5}, []string{"Felix"}},
		{Pattern{4}, []string{"Rome"}},
		{Pattern{5, 3, 1}, []string{"World_War_I"}},
		{Pattern{4, 3}, []string{"Cold_War"}},
		{Pattern{5, 3}, nil},
		{Pattern{7}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Filter(idx, tt.pattern))
		})
	}
}

func TestFilterIffLengthsEqual(t *testing.T) {
	idx := testIndex()
	patterns := []Pattern{{}, {3}, {5}, {4}, {5, 3, 1}, {4, 3}, {1}, {3, 5}}

	for _, p := range patterns {
		got := map[string]bool{}
		for _, title := range Filter(idx, p) {
			got[title] = true
		}

		for _, a := range idx.Articles {
			want := len(p) == 0 || TitlePattern(a.Title).Equal(p)
			assert.Equal(t, want, got[a.Title], "pattern %s title %s", p, a.Title)
		}
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, testIndex().Validate())

	missing := &Index{Articles: []Article{{Title: "Felix", Words: []int{0}}}}
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIndex))

	outOfRange := testIndex()
	outOfRange.Articles[1].Words = []int{3}
	err = outOfRange.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIndex))
	assert.Equal(t, "invalid index: membership index out of range (article 'Rex', word 3)", err.Error())
}
