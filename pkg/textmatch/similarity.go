package textmatch

import "strings"

const (
	// DefaultThreshold is the minimum combined score for a fuzzy match.
	DefaultThreshold = 0.62

	// ContextWeight scales the token overlap with the full candidate text.
	ContextWeight = 0.35

	// MaxScore is the upper bound of Score.
	MaxScore = 1.0 + ContextWeight
)

// Candidate is the text a query is scored against.
type Candidate struct {
	Name        string
	Category    string
	Description string
}

// Text joins every field of the candidate into one searchable string.
func (c Candidate) Text() string {
	return c.Name + " " + c.Category + " " + c.Description
}

// TokenSetRatio is the Jaccard similarity of the word-token sets of a and b.
// It is 0 when either side has no tokens.
func TokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	inter := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	toks := Tokens(s)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}

// Score combines name similarity with a weighted bonus for vocabulary shared with
// the whole candidate text:
//
//	max(SequenceRatio(q, name), TokenSetRatio(q, name)) + 0.35*TokenSetRatio(q, text)
//
// The query is normalized first; the result lies in [0, MaxScore].
func Score(query string, c Candidate) float64 {
	q := Normalize(query)
	s1 := SequenceRatio(q, strings.ToLower(c.Name))
	s2 := TokenSetRatio(q, c.Name)
	s3 := ContextWeight * TokenSetRatio(q, c.Text())
	return max(s1, s2) + s3
}

// BestMatch scans candidates in order and returns the index and score of the
// highest scorer. The first candidate wins exact ties. When the best score is
// below threshold, BestMatch returns (-1, 0).
func BestMatch(query string, candidates []Candidate, threshold float64) (int, float64) {
	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		if score := Score(query, c); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < threshold {
		return -1, 0.0
	}
	return best, bestScore
}
