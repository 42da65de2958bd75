package textmatch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-chatbot/pkg/textmatch"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t\n ", want: ""},
		{name: "trim and lower", in: "  Hi   there ", want: "hi there"},
		{name: "mixed whitespace runs", in: "Dining\t\tTable\n\nSet", want: "dining table set"},
		{name: "decomposed accent composes", in: "De\u0301cor", want: "d\u00e9cor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := textmatch.Normalize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, textmatch.Normalize(got), "Normalize must be idempotent")
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"oslo", "3", "seater", "sofa"}, textmatch.Tokens("Oslo 3-Seater, Sofa!"))
	assert.Empty(t, textmatch.Tokens(" -- !! "))
	assert.Equal(t, []string{"décor", "set"}, textmatch.Tokens("Décor set"))
}

func TestTokenSetRatio(t *testing.T) {
	assert.Equal(t, 1.0, textmatch.TokenSetRatio("oslo sofa", "oslo sofa"))
	assert.Equal(t, 1.0, textmatch.TokenSetRatio("Sofa Oslo", "oslo SOFA sofa"))
	assert.Equal(t, 0.0, textmatch.TokenSetRatio("oslo sofa", "dining table"))
	assert.Equal(t, 0.0, textmatch.TokenSetRatio("", "dining table"))
	assert.Equal(t, 0.0, textmatch.TokenSetRatio("dining", "!!"))
	assert.InDelta(t, 1.0/3.0, textmatch.TokenSetRatio("oslo sofa", "oslo chair"), 1e-9)
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"abc", "", 0.0},
		{"abcd", "abcd", 1.0},
		{"abcd", "bcde", 0.75},
		{"hello", "hallo", 0.8},
		{"ab", "ba", 0.5},
		{"sofa", "oslo sofa", 8.0 / 13.0},
		{"yy", strings.Repeat("y", 200), 4.0 / 202.0},
	}

	for _, tc := range tests {
		assert.InDeltaf(t, tc.want, textmatch.SequenceRatio(tc.a, tc.b), 1e-9, "SequenceRatio(%q, %q)", tc.a, tc.b)
	}
}

func TestScore(t *testing.T) {
	c := textmatch.Candidate{Name: "Oslo Sofa", Category: "Living Room", Description: "A 3-seater sofa"}

	// name matches exactly; the context set {oslo sofa living room a 3 seater} shares 2 of 7 tokens
	assert.InDelta(t, 1.0+0.35*2.0/7.0, textmatch.Score("  oslo   SOFA ", c), 1e-9)

	s := textmatch.Score("zzyzx qqplm", c)
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, textmatch.MaxScore)
}

func sampleCandidates() []textmatch.Candidate {
	return []textmatch.Candidate{
		{Name: "Oslo Sofa", Category: "Living Room", Description: "Three seater sofa in grey linen"},
		{Name: "Kisumu Wardrobe", Category: "Bedroom", Description: "Four door mahogany wardrobe"},
		{Name: "Nordic Dining Table", Category: "Dining", Description: "Six seater oak table"},
		{Name: "Rattan Lounger", Category: "Outdoor", Description: "Weatherproof garden lounger"},
	}
}

func TestBestMatch(t *testing.T) {
	items := sampleCandidates()

	t.Run("exact name", func(t *testing.T) {
		idx, score := textmatch.BestMatch("kisumu wardrobe", items, textmatch.DefaultThreshold)
		require.Equal(t, 1, idx)
		assert.GreaterOrEqual(t, score, 1.0)
	})

	t.Run("typo still matches", func(t *testing.T) {
		idx, _ := textmatch.BestMatch("kisumu wardrobbe", items, textmatch.DefaultThreshold)
		assert.Equal(t, 1, idx)
	})

	t.Run("gibberish is no match", func(t *testing.T) {
		idx, score := textmatch.BestMatch("zzyzx qqplm", items, textmatch.DefaultThreshold)
		assert.Equal(t, -1, idx)
		assert.Equal(t, 0.0, score)
	})

	t.Run("empty catalog", func(t *testing.T) {
		idx, _ := textmatch.BestMatch("oslo sofa", nil, textmatch.DefaultThreshold)
		assert.Equal(t, -1, idx)
	})

	t.Run("first seen wins ties", func(t *testing.T) {
		dup := []textmatch.Candidate{
			{Name: "Twin Chair", Category: "Office"},
			{Name: "Twin Chair", Category: "Office"},
		}
		idx, _ := textmatch.BestMatch("twin chair", dup, textmatch.DefaultThreshold)
		assert.Equal(t, 0, idx)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, firstScore := textmatch.BestMatch("oak dining table", items, textmatch.DefaultThreshold)
		for i := 0; i < 10; i++ {
			idx, score := textmatch.BestMatch("oak dining table", items, textmatch.DefaultThreshold)
			assert.Equal(t, first, idx)
			assert.Equal(t, firstScore, score)
		}
	})
}

func TestContainsAny(t *testing.T) {
	assert.True(t, textmatch.ContainsAny("good morning team", []string{"hello", "good morning"}))
	assert.False(t, textmatch.ContainsAny("oslo sofa", []string{"hello", ""}))
	assert.False(t, textmatch.ContainsAny("", []string{""}))
}
