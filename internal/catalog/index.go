package catalog

import (
	"slices"

	"furniture-chatbot/pkg/textmatch"
)

var normalizedInfoCategory = textmatch.Normalize(InfoCategory)

// Index is the read-only view of the knowledge base built once at startup.
// It is safe for concurrent use because nothing mutates it after NewIndex.
type Index struct {
	products   []Product
	categories []string
	branches   []Branch
	info       Info
	hasInfo    bool
}

// NewIndex derives products, categories, branches and the info entry from entries.
//
// A product is an entry tagged "product", or any entry with a non-Info category;
// either way it must carry a url. Insertion order is preserved.
func NewIndex(entries []Entry) *Index {
	idx := &Index{}
	seenCategory := map[string]struct{}{}
	branchesSet := false

	for _, e := range entries {
		category := textmatch.Normalize(e.Category)

		if isProduct(e, category) {
			idx.products = append(idx.products, Product{
				Name:        e.Name,
				Category:    e.Category,
				Description: e.Description,
				Price:       e.Price,
				URL:         e.URL,
			})
		}

		if category != "" && category != normalizedInfoCategory {
			if _, ok := seenCategory[category]; !ok {
				seenCategory[category] = struct{}{}
				idx.categories = append(idx.categories, category)
			}
		}

		if e.Type == TypeBranches && !branchesSet {
			idx.branches = slices.Clone(e.Items)
			branchesSet = true
		}

		if !idx.hasInfo && (e.Type == TypeInfo || category == normalizedInfoCategory) {
			idx.info = Info{Name: e.Name, Description: e.Description, URL: e.URL}
			idx.hasInfo = true
		}
	}

	slices.Sort(idx.categories)
	return idx
}

func isProduct(e Entry, category string) bool {
	if e.URL == "" {
		return false
	}
	if e.Type == TypeProduct {
		return true
	}
	return category != "" && category != normalizedInfoCategory
}

// Products returns every product in knowledge base order.
func (idx *Index) Products() []Product {
	return slices.Clone(idx.products)
}

// SearchableProducts returns the products eligible for fuzzy matching: all of
// them except anything filed under the Info category.
func (idx *Index) SearchableProducts() []Product {
	out := make([]Product, 0, len(idx.products))
	for _, p := range idx.products {
		if textmatch.Normalize(p.Category) != normalizedInfoCategory {
			out = append(out, p)
		}
	}
	return out
}

// ProductsInCategory returns products whose normalized category equals the
// normalized canonical name, in knowledge base order.
func (idx *Index) ProductsInCategory(canonical string) []Product {
	want := textmatch.Normalize(canonical)
	var out []Product
	for _, p := range idx.products {
		if textmatch.Normalize(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct normalized non-Info categories, sorted.
func (idx *Index) Categories() []string {
	return slices.Clone(idx.categories)
}

// HasCategory reports whether the normalized category exists.
func (idx *Index) HasCategory(category string) bool {
	_, found := slices.BinarySearch(idx.categories, textmatch.Normalize(category))
	return found
}

// Branches returns the branch list, empty when the knowledge base has none.
func (idx *Index) Branches() []Branch {
	return slices.Clone(idx.branches)
}

// Info returns the about-us entry if the knowledge base has one.
func (idx *Index) Info() (Info, bool) {
	return idx.info, idx.hasInfo
}
