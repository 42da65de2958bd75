package router

// Intent represents what the shopper asked for
type Intent string

const (
	IntentGreeting       Intent = "GREETING"
	IntentAbout          Intent = "ABOUT"
	IntentCategoryList   Intent = "CATEGORY_LIST"
	IntentLocation       Intent = "LOCATION"
	IntentCategoryBrowse Intent = "CATEGORY_BROWSE"
	IntentProductMatch   Intent = "PRODUCT_MATCH"
	IntentFallback       Intent = "FALLBACK"
)

// RouterOutput is the routing decision for one message.
type RouterOutput struct {
	Intent Intent  `json:"intent"`
	Rule   string  `json:"rule"`            // name of the rule that fired
	Reply  string  `json:"reply"`           // text sent back to the shopper
	Score  float64 `json:"score,omitempty"` // fuzzy match score, product matches only
}

// message is the per-request view every rule inspects.
type message struct {
	raw        string // trimmed input
	normalized string
}
