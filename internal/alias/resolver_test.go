package alias_test

import (
	"testing"

	"furniture-chatbot/internal/alias"
	"furniture-chatbot/internal/catalog"
)

var branches = []catalog.Branch{
	{City: "Nakuru", Place: "Nmall Plaza, Kenyatta Avenue", Tel: "0729856769"},
	{City: "Nakuru", Place: "Vicmark Plaza, Government Road", Tel: "0748578515"},
	{City: "Nairobi", Place: "Ciata Mall, Kiambu Road", Tel: "0707681684"},
	{City: "Eldoret", Place: "Rupas Mall", Tel: "0702198186"},
	{City: "Meru", Place: "Greencity Mall", Tel: "0748578516"},
}

func TestResolveCategory(t *testing.T) {
	r := alias.NewDefault()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Sofa", want: "living room"},
		{in: "  LOUNGE chairs ", want: "living room"},
		{in: "Décor", want: "home decor"},
		{in: "bedroom", want: "bedroom"},
		{in: "dining", want: "dining"},
		{in: "Garden", want: "outdoor"},
		{in: "Kitchen   Stuff", want: "kitchen stuff"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := r.ResolveCategory(tc.in); got != tc.want {
			t.Errorf("ResolveCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveCategoryFirstAliasWins(t *testing.T) {
	r := alias.New([]alias.Synonym{
		{Alias: "bed", Canonical: "bedroom"},
		{Alias: "sofa", Canonical: "living room"},
	}, nil)

	if got := r.ResolveCategory("sofa bed"); got != "bedroom" {
		t.Errorf("expected table order to win, got %q", got)
	}
}

func TestMentionedCategory(t *testing.T) {
	r := alias.NewDefault()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "show me your couches", want: "living room", wantOK: true},
		{in: "anything for the office?", want: "office", wantOK: true},
		{in: "outdoor furniture please", want: "outdoor", wantOK: true},
		{in: "I need a living room set", want: "living room", wantOK: true},
		{in: "kisumu wardrobe", wantOK: false},
		{in: "   ", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := r.MentionedCategory(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("MentionedCategory(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMentionedCategoryMatchesCanonicalName(t *testing.T) {
	r := alias.New([]alias.Synonym{{Alias: "lounge", Canonical: "living room"}}, nil)

	got, ok := r.MentionedCategory("living room ideas")
	if !ok || got != "living room" {
		t.Errorf("expected canonical name to match, got (%q, %v)", got, ok)
	}
}

func TestLocateBranch(t *testing.T) {
	r := alias.NewDefault()

	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{name: "city name", query: "where is your nakuru branch", want: "Nmall Plaza, Kenyatta Avenue", wantOK: true},
		{name: "mall alias", query: "Is there a shop at Rupas?", want: "Rupas Mall", wantOK: true},
		{name: "road alias", query: "branch on kiambu road", want: "Ciata Mall, Kiambu Road", wantOK: true},
		{name: "green city", query: "find you in green city", want: "Greencity Mall", wantOK: true},
		{name: "unknown city", query: "where is your mombasa branch", wantOK: false},
		{name: "empty", query: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.LocateBranch(tc.query, branches)
			if ok != tc.wantOK {
				t.Fatalf("LocateBranch(%q) ok = %v, want %v", tc.query, ok, tc.wantOK)
			}
			if ok && got.Place != tc.want {
				t.Errorf("LocateBranch(%q) place = %q, want %q", tc.query, got.Place, tc.want)
			}
		})
	}
}

func TestLocateBranchCityOrder(t *testing.T) {
	r := alias.NewDefault()

	// nairobi precedes nakuru in the alias table
	got, ok := r.LocateBranch("nakuru or nairobi?", branches)
	if !ok || got.City != "Nairobi" {
		t.Errorf("expected Nairobi, got (%+v, %v)", got, ok)
	}
}

func TestLocateBranchKeepsScanningWithoutBranch(t *testing.T) {
	r := alias.NewDefault()
	onlyMeru := []catalog.Branch{{City: "Meru", Place: "Greencity Mall", Tel: "0748578516"}}

	got, ok := r.LocateBranch("nairobi or meru", onlyMeru)
	if !ok || got.City != "Meru" {
		t.Errorf("expected Meru after Nairobi had no branch, got (%+v, %v)", got, ok)
	}

	if _, ok := r.LocateBranch("nairobi", onlyMeru); ok {
		t.Errorf("expected no branch for nairobi")
	}
	if _, ok := r.LocateBranch("nakuru", nil); ok {
		t.Errorf("expected no branch with an empty branch list")
	}
}
