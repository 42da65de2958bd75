package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"furniture-chatbot/internal/catalog"
)

const logPrefixLoad = "internal.catalog.repository.file.LoadEntries"

// LoadEntries reads and decodes the whole document. The document must be a
// list; list items that are not objects are skipped, and fields of the wrong
// type are read as empty.
func (r *implRepository) LoadEntries(ctx context.Context) ([]catalog.Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", catalog.ErrKnowledgeBaseRead, r.path, err)
	}

	raw, err := decode(r.path, data)
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			r.l.Warnf(ctx, "%s: entry %d is not an object, skipping", logPrefixLoad, i)
			continue
		}
		entries = append(entries, toEntry(m))
	}

	r.l.Infof(ctx, "%s: loaded %d entries from %s", logPrefixLoad, len(entries), r.path)
	return entries, nil
}

func decode(path string, data []byte) ([]interface{}, error) {
	var doc interface{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", catalog.ErrKnowledgeBaseParse, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", catalog.ErrKnowledgeBaseParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnsupportedFormat, ext)
	}

	list, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a list of entries", catalog.ErrKnowledgeBaseParse)
	}
	return list, nil
}

func toEntry(m map[string]interface{}) catalog.Entry {
	e := catalog.Entry{
		Type:        catalog.EntryType(strings.ToLower(strings.TrimSpace(getStringFromMap(m, "type")))),
		Name:        getStringFromMap(m, "name"),
		Category:    getStringFromMap(m, "category"),
		Description: getStringFromMap(m, "description"),
		Price:       getScalarFromMap(m, "price"),
		URL:         getStringFromMap(m, "url"),
	}

	if e.Type == catalog.TypeBranches {
		if items, ok := m["items"].([]interface{}); ok {
			for _, it := range items {
				bm, ok := it.(map[string]interface{})
				if !ok {
					continue
				}
				e.Items = append(e.Items, catalog.Branch{
					City:  getScalarFromMap(bm, "city"),
					Place: getScalarFromMap(bm, "place"),
					Tel:   getScalarFromMap(bm, "tel"),
				})
			}
		}
	}

	return e
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

// getScalarFromMap renders strings and numbers as text. Zero, false and
// non-scalar values read as empty.
func getScalarFromMap(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case int64:
		if v == 0 {
			return ""
		}
		return strconv.FormatInt(v, 10)
	case uint64:
		if v == 0 {
			return ""
		}
		return strconv.FormatUint(v, 10)
	default:
		return ""
	}
}
