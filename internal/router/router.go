package router

import (
	"context"
	"strings"

	"furniture-chatbot/pkg/textmatch"
)

// Route runs the rules in order and returns the first reply produced.
// The final rule always fires, so every message gets a reply.
func (r *KeywordRouter) Route(ctx context.Context, text string) RouterOutput {
	trimmed := strings.TrimSpace(text)
	m := message{raw: trimmed, normalized: textmatch.Normalize(trimmed)}

	for _, ru := range r.rules {
		out, ok := ru.apply(ctx, m)
		if !ok {
			continue
		}
		out.Intent = ru.intent
		out.Rule = ru.name
		r.l.Debugf(ctx, "%s: %q -> %s (rule %s)", LogPrefixRoute, m.normalized, out.Intent, out.Rule)
		return out
	}

	// unreachable while routeFallback is last
	return RouterOutput{Intent: IntentFallback, Rule: RuleFallback, Reply: r.formatter.Fallback(r.branches)}
}

func (r *KeywordRouter) routeEmpty(_ context.Context, m message) (RouterOutput, bool) {
	if m.normalized != "" {
		return RouterOutput{}, false
	}
	return RouterOutput{Reply: r.formatter.Greeting()}, true
}

func (r *KeywordRouter) routeGreeting(_ context.Context, m message) (RouterOutput, bool) {
	if !textmatch.ContainsAny(m.normalized, GreetingPhrases) {
		return RouterOutput{}, false
	}
	return RouterOutput{Reply: r.formatter.Greeting()}, true
}

func (r *KeywordRouter) routeAbout(_ context.Context, m message) (RouterOutput, bool) {
	if !textmatch.ContainsAny(m.normalized, r.aboutPhrases) {
		return RouterOutput{}, false
	}
	return RouterOutput{Reply: r.formatter.About(r.info, r.hasInfo)}, true
}

func (r *KeywordRouter) routeCategoryList(_ context.Context, m message) (RouterOutput, bool) {
	if !textmatch.ContainsAny(m.normalized, CategoryListPhrases) {
		return RouterOutput{}, false
	}
	return RouterOutput{Reply: r.formatter.CategoryList(r.categories)}, true
}

func (r *KeywordRouter) routeLocation(_ context.Context, m message) (RouterOutput, bool) {
	if !textmatch.ContainsAny(m.normalized, LocationPhrases) {
		return RouterOutput{}, false
	}
	if b, ok := r.resolver.LocateBranch(m.normalized, r.branches); ok {
		return RouterOutput{Reply: r.formatter.Branch(b)}, true
	}
	return RouterOutput{Reply: r.formatter.BranchDirectory(r.branches)}, true
}

func (r *KeywordRouter) routeCategoryBrowse(ctx context.Context, m message) (RouterOutput, bool) {
	canonical, ok := r.resolver.MentionedCategory(m.normalized)
	if !ok {
		return RouterOutput{}, false
	}

	products := r.catalog.ProductsInCategory(r.resolver.ResolveCategory(canonical))
	if len(products) == 0 {
		r.l.Infof(ctx, "%s: category %q has no products", LogPrefixRoute, canonical)
		return RouterOutput{Reply: r.formatter.EmptyCategory()}, true
	}
	return RouterOutput{Reply: r.formatter.CategoryPicks(canonical, products)}, true
}

func (r *KeywordRouter) routeProductMatch(ctx context.Context, m message) (RouterOutput, bool) {
	i, score := textmatch.BestMatch(m.raw, r.candidates, r.threshold)
	if i < 0 {
		return RouterOutput{}, false
	}

	p := r.products[i]
	r.l.Infof(ctx, "%s: matched product %q (score %.3f)", LogPrefixRoute, p.Name, score)
	return RouterOutput{Reply: r.formatter.Product(p), Score: score}, true
}

func (r *KeywordRouter) routeFallback(ctx context.Context, m message) (RouterOutput, bool) {
	r.l.Infof(ctx, "%s: no rule matched %q", LogPrefixRoute, m.normalized)
	return RouterOutput{Reply: r.formatter.Fallback(r.branches)}, true
}
