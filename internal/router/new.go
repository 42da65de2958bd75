package router

import (
	"context"

	"furniture-chatbot/internal/alias"
	"furniture-chatbot/internal/catalog"
	"furniture-chatbot/internal/reply"
	"furniture-chatbot/pkg/log"
	"furniture-chatbot/pkg/textmatch"
)

// Router is the interface for intent routing
type Router interface {
	Route(ctx context.Context, message string) RouterOutput
}

// rule is one guarded handler. apply reports false when the rule does not
// fire, letting the message fall through to the next rule.
type rule struct {
	name   string
	intent Intent
	apply  func(ctx context.Context, m message) (RouterOutput, bool)
}

// KeywordRouter classifies messages with an ordered keyword rule chain and a
// fuzzy product matcher. Everything it holds is read-only after New, so one
// instance serves concurrent requests without locking.
type KeywordRouter struct {
	l         log.Logger
	resolver  *alias.Resolver
	formatter *reply.Formatter
	threshold float64

	categories []string
	branches   []catalog.Branch
	info       catalog.Info
	hasInfo    bool
	catalog    *catalog.Index

	products   []catalog.Product
	candidates []textmatch.Candidate

	aboutPhrases []string
	rules        []rule
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over a fully built catalog index.
// A non-positive threshold selects textmatch.DefaultThreshold.
func New(l log.Logger, idx *catalog.Index, resolver *alias.Resolver, formatter *reply.Formatter, threshold float64) *KeywordRouter {
	if threshold <= 0 {
		threshold = textmatch.DefaultThreshold
	}

	r := &KeywordRouter{
		l:          l,
		resolver:   resolver,
		formatter:  formatter,
		threshold:  threshold,
		categories: idx.Categories(),
		branches:   idx.Branches(),
		catalog:    idx,
		products:   idx.SearchableProducts(),
	}
	r.info, r.hasInfo = idx.Info()

	r.candidates = make([]textmatch.Candidate, len(r.products))
	for i, p := range r.products {
		r.candidates[i] = textmatch.Candidate{Name: p.Name, Category: p.Category, Description: p.Description}
	}

	brand := textmatch.Normalize(formatter.Brand())
	r.aboutPhrases = append([]string{}, AboutPhrases...)
	if brand != "" {
		r.aboutPhrases = append(r.aboutPhrases, "what is "+brand, brand)
	}

	r.rules = []rule{
		{name: RuleEmpty, intent: IntentGreeting, apply: r.routeEmpty},
		{name: RuleGreeting, intent: IntentGreeting, apply: r.routeGreeting},
		{name: RuleAbout, intent: IntentAbout, apply: r.routeAbout},
		{name: RuleCategoryList, intent: IntentCategoryList, apply: r.routeCategoryList},
		{name: RuleLocation, intent: IntentLocation, apply: r.routeLocation},
		{name: RuleCategoryBrowse, intent: IntentCategoryBrowse, apply: r.routeCategoryBrowse},
		{name: RuleProductMatch, intent: IntentProductMatch, apply: r.routeProductMatch},
		{name: RuleFallback, intent: IntentFallback, apply: r.routeFallback},
	}

	return r
}

// Rules returns the rule names in evaluation order.
func (r *KeywordRouter) Rules() []string {
	names := make([]string, len(r.rules))
	for i, ru := range r.rules {
		names[i] = ru.name
	}
	return names
}
