package catalog

// EntryType tags a knowledge base entry.
type EntryType string

const (
	TypeProduct  EntryType = "product"
	TypeInfo     EntryType = "info"
	TypeBranches EntryType = "branches"
)

// InfoCategory marks the "about us" entry in catalogs that predate EntryType.
const InfoCategory = "Info"

// Entry is one raw knowledge base record. Only the fields relevant to its kind
// are populated; absent fields are empty strings.
type Entry struct {
	Type        EntryType
	Name        string
	Category    string
	Description string
	Price       string
	URL         string
	Items       []Branch // TypeBranches only
}

// Product is a catalog item that can be browsed or fuzzy matched.
type Product struct {
	Name        string
	Category    string
	Description string
	Price       string // optional, already rendered for display
	URL         string
}

// Branch is a physical shop.
type Branch struct {
	City  string
	Place string
	Tel   string
}

// Info is the "about us" entry.
type Info struct {
	Name        string
	Description string
	URL         string
}
