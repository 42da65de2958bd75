// Package reply renders routed intents into the text sent back to the shopper.
// Replies may carry inline markup (anchors, <b>, <br>, **bold**) for the chat page.
package reply

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"furniture-chatbot/internal/catalog"
	"furniture-chatbot/pkg/textmatch"
)

// SocialLink is a named link listed under the branch directory.
type SocialLink struct {
	Name string
	URL  string
}

// Config customizes the static parts of the replies. Empty fields take defaults.
type Config struct {
	BrandName           string
	SocialLinks         []SocialLink
	SuggestedCategories []string
}

// Formatter is immutable after New and safe for concurrent use.
type Formatter struct {
	brand       string
	socialLinks []SocialLink
	suggested   []string
}

// New creates a Formatter.
func New(cfg Config) *Formatter {
	f := &Formatter{
		brand:       cfg.BrandName,
		socialLinks: slices.Clone(cfg.SocialLinks),
		suggested:   slices.Clone(cfg.SuggestedCategories),
	}
	if f.brand == "" {
		f.brand = DefaultBrandName
	}
	if len(f.socialLinks) == 0 {
		f.socialLinks = slices.Clone(DefaultSocialLinks)
	}
	if len(f.suggested) == 0 {
		f.suggested = slices.Clone(DefaultSuggestedCategories)
	}
	return f
}

// Brand returns the configured brand name.
func (f *Formatter) Brand() string {
	return f.brand
}

// Link renders an anchor opening url in a new tab.
func Link(name, url string) string {
	return fmt.Sprintf(tmplLink, url, name)
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	// a Caser keeps state, so one is built per call
	return cases.Title(language.English).String(s)
}

func (f *Formatter) Greeting() string {
	return fmt.Sprintf(tmplGreeting, f.brand)
}

// About uses the knowledge base info entry when there is one.
func (f *Formatter) About(info catalog.Info, ok bool) string {
	if !ok {
		return fmt.Sprintf(tmplAboutFallback, f.brand)
	}
	name := info.Name
	if name == "" {
		name = msgDefaultInfoName
	}
	url := info.URL
	if url == "" {
		url = msgDefaultInfoURL
	}
	return fmt.Sprintf(tmplAbout, info.Description, Link(name, url))
}

// CategoryList title-cases and sorts the categories. With no categories it
// lists the suggested ones instead.
func (f *Formatter) CategoryList(categories []string) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = textmatch.Normalize(c); c != "" {
			names = append(names, TitleCase(c))
		}
	}
	if len(names) == 0 {
		names = slices.Clone(f.suggested)
	}
	slices.Sort(names)
	names = slices.Compact(names)
	return fmt.Sprintf(tmplCategoryList, strings.Join(names, ", "))
}

// Branch answers a question about one specific branch.
func (f *Formatter) Branch(b catalog.Branch) string {
	return fmt.Sprintf(tmplBranch, b.City, b.Place, b.Tel)
}

// BranchDirectory introduces the full directory.
func (f *Formatter) BranchDirectory(branches []catalog.Branch) string {
	return msgDirectoryIntro + f.Directory(branches)
}

// Directory groups branches by city in first-seen order and closes with the
// social links.
func (f *Formatter) Directory(branches []catalog.Branch) string {
	type cityGroup struct {
		city     string
		branches []catalog.Branch
	}

	var groups []*cityGroup
	byCity := map[string]*cityGroup{}
	for _, b := range branches {
		key := textmatch.Normalize(b.City)
		g, ok := byCity[key]
		if !ok {
			g = &cityGroup{city: strings.TrimSpace(b.City)}
			byCity[key] = g
			groups = append(groups, g)
		}
		g.branches = append(g.branches, b)
	}

	var sb strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&sb, tmplCityHeader, g.city)
		for _, b := range g.branches {
			if b.Tel == "" {
				fmt.Fprintf(&sb, tmplBranchNoTel, b.Place)
				continue
			}
			fmt.Fprintf(&sb, tmplBranchLine, b.Place, b.Tel)
		}
		sb.WriteString("<br>")
	}

	links := make([]string, 0, len(f.socialLinks))
	for _, l := range f.socialLinks {
		links = append(links, fmt.Sprintf(tmplSocialLink, l.URL, l.Name))
	}
	sb.WriteString(msgSocialHeader)
	sb.WriteString(strings.Join(links, "<br>"))

	return sb.String()
}

// CategoryPicks lists up to MaxCategoryPicks products with a "+N more" suffix
// when the category holds more.
func (f *Formatter) CategoryPicks(canonical string, products []catalog.Product) string {
	shown := products
	if len(shown) > MaxCategoryPicks {
		shown = shown[:MaxCategoryPicks]
	}

	lines := make([]string, 0, len(shown))
	for _, p := range shown {
		lines = append(lines, fmt.Sprintf(tmplPickLine, p.Name, Link(msgPickLinkText, p.URL)))
	}

	more := ""
	if extra := len(products) - MaxCategoryPicks; extra > 0 {
		more = fmt.Sprintf(tmplMorePicks, extra)
	}

	return fmt.Sprintf(tmplCategoryPicks, TitleCase(canonical), strings.Join(lines, "\n"), more)
}

func (f *Formatter) EmptyCategory() string {
	return msgEmptyCategory
}

// Product describes a fuzzy-matched product; the price sentence is omitted
// when the product has none.
func (f *Formatter) Product(p catalog.Product) string {
	price := ""
	if p.Price != "" {
		price = fmt.Sprintf(tmplPrice, p.Price)
	}
	return fmt.Sprintf(tmplProduct, p.Name, p.Description, price, Link(p.Name, p.URL))
}

// Fallback offers the suggested categories and the branch directory.
func (f *Formatter) Fallback(branches []catalog.Branch) string {
	var sb strings.Builder
	sb.WriteString(msgFallbackIntro)
	sb.WriteString(msgFallbackBrowse)
	for i, c := range f.suggested {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("• " + c)
	}
	sb.WriteString("\n\n")
	sb.WriteString(msgFallbackBranch)
	sb.WriteString(f.Directory(branches))
	return sb.String()
}
