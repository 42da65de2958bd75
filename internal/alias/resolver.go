// Package alias resolves category and city mentions to canonical keys.
package alias

import (
	"strings"

	"furniture-chatbot/internal/catalog"
	"furniture-chatbot/pkg/textmatch"
)

// Resolver holds normalized copies of the synonym and city tables.
// It is immutable after New and safe for concurrent use.
type Resolver struct {
	synonyms []Synonym
	cities   []CityAliases
}

// New normalizes both tables, keeping their order.
func New(synonyms []Synonym, cities []CityAliases) *Resolver {
	r := &Resolver{
		synonyms: make([]Synonym, 0, len(synonyms)),
		cities:   make([]CityAliases, 0, len(cities)),
	}
	for _, s := range synonyms {
		r.synonyms = append(r.synonyms, Synonym{
			Alias:     textmatch.Normalize(s.Alias),
			Canonical: textmatch.Normalize(s.Canonical),
		})
	}
	for _, c := range cities {
		aliases := make([]string, 0, len(c.Aliases))
		for _, a := range c.Aliases {
			aliases = append(aliases, textmatch.Normalize(a))
		}
		r.cities = append(r.cities, CityAliases{City: textmatch.Normalize(c.City), Aliases: aliases})
	}
	return r
}

// NewDefault builds a Resolver over DefaultSynonyms and DefaultCityAliases.
func NewDefault() *Resolver {
	return New(DefaultSynonyms, DefaultCityAliases)
}

// ResolveCategory returns the canonical category of the first synonym alias
// contained in the normalized input, or the normalized input itself.
func (r *Resolver) ResolveCategory(input string) string {
	q := textmatch.Normalize(input)
	for _, s := range r.synonyms {
		if s.Alias != "" && strings.Contains(q, s.Alias) {
			return s.Canonical
		}
	}
	return q
}

// MentionedCategory scans the synonym table in order and returns the canonical
// category of the first entry whose alias or canonical name appears in text.
func (r *Resolver) MentionedCategory(text string) (string, bool) {
	q := textmatch.Normalize(text)
	if q == "" {
		return "", false
	}
	for _, s := range r.synonyms {
		if (s.Alias != "" && strings.Contains(q, s.Alias)) ||
			(s.Canonical != "" && strings.Contains(q, s.Canonical)) {
			return s.Canonical, true
		}
	}
	return "", false
}

// LocateBranch finds the branch for the first city alias mentioned in query.
// A branch belongs to a city when its city or place contains the city key,
// case-insensitively. When an alias matches but no branch carries that city,
// the scan continues with the remaining aliases and cities.
func (r *Resolver) LocateBranch(query string, branches []catalog.Branch) (catalog.Branch, bool) {
	q := textmatch.Normalize(query)
	if q == "" || len(branches) == 0 {
		return catalog.Branch{}, false
	}

	for _, c := range r.cities {
		for _, a := range c.Aliases {
			if a == "" || !strings.Contains(q, a) {
				continue
			}
			for _, b := range branches {
				if strings.Contains(strings.ToLower(b.City), c.City) ||
					strings.Contains(strings.ToLower(b.Place), c.City) {
					return b, true
				}
			}
		}
	}
	return catalog.Branch{}, false
}
