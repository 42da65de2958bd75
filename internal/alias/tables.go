package alias

// Synonym maps a free-form mention to a canonical category.
type Synonym struct {
	Alias     string
	Canonical string
}

// CityAliases lists the substrings that identify a city in a message.
type CityAliases struct {
	City    string
	Aliases []string
}

// DefaultSynonyms is scanned in order; the first alias found wins.
var DefaultSynonyms = []Synonym{
	{Alias: "living", Canonical: "living room"},
	{Alias: "living-room", Canonical: "living room"},
	{Alias: "sitting", Canonical: "living room"},
	{Alias: "lounge", Canonical: "living room"},
	{Alias: "sofa", Canonical: "living room"},
	{Alias: "couch", Canonical: "living room"},
	{Alias: "decor", Canonical: "home decor"},
	{Alias: "décor", Canonical: "home decor"},
	{Alias: "home decor", Canonical: "home decor"},
	{Alias: "office", Canonical: "office"},
	{Alias: "bed", Canonical: "bedroom"},
	{Alias: "bedroom", Canonical: "bedroom"},
	{Alias: "dine", Canonical: "dining"},
	{Alias: "dining", Canonical: "dining"},
	{Alias: "outdoor", Canonical: "outdoor"},
	{Alias: "garden", Canonical: "outdoor"},
}

// DefaultCityAliases is scanned in order; the first city with a matching branch wins.
var DefaultCityAliases = []CityAliases{
	{City: "nairobi", Aliases: []string{"nairobi", "ciata", "kiambu"}},
	{City: "nakuru", Aliases: []string{"nakuru", "nmall", "vicmark", "kenyatta", "government road"}},
	{City: "eldoret", Aliases: []string{"eldoret", "rupa", "rupas", "rupas mall"}},
	{City: "meru", Aliases: []string{"meru", "greencity", "green city"}},
}
