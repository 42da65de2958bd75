package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Trigger phrases, matched as substrings of the normalized message.
var (
	GreetingPhrases = []string{
		"hi", "hello", "hey", "habari", "mambo", "niaje",
		"good morning", "good afternoon", "good evening", "greetings",
	}

	// AboutPhrases is extended at construction with "<brand>" and "what is <brand>".
	AboutPhrases = []string{"about", "who are you", "about us"}

	CategoryListPhrases = []string{"categories", "category", "show products", "browse"}

	LocationPhrases = []string{"shop", "location", "branch", "contact", "where", "find"}
)

// Rule names, in evaluation order.
const (
	RuleEmpty          = "empty"
	RuleGreeting       = "greeting"
	RuleAbout          = "about"
	RuleCategoryList   = "category_list"
	RuleLocation       = "location"
	RuleCategoryBrowse = "category_browse"
	RuleProductMatch   = "product_match"
	RuleFallback       = "fallback"
)
