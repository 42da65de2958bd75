package file_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-chatbot/internal/catalog"
	"furniture-chatbot/internal/catalog/repository/file"
	"furniture-chatbot/pkg/log"
)

func TestLoadEntriesJSON(t *testing.T) {
	repo := file.New("testdata/kb.json", log.NewNop())

	entries, err := repo.LoadEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 5, "the non-object entry is skipped")

	assert.Equal(t, "Info", entries[0].Category)

	oslo := entries[1]
	assert.Equal(t, catalog.TypeProduct, oslo.Type)
	assert.Equal(t, "85000", oslo.Price, "numeric prices render without decimals")

	assert.Equal(t, "KES 78,000", entries[2].Price)

	draft := entries[3]
	assert.Equal(t, "", draft.Description, "wrongly typed fields read as empty")
	assert.Equal(t, "", draft.Price, "zero price reads as absent")
	assert.Equal(t, "", draft.URL)

	branches := entries[4]
	assert.Equal(t, catalog.TypeBranches, branches.Type)
	assert.Equal(t, []catalog.Branch{
		{City: "Nakuru", Place: "Nmall Plaza, Kenyatta Avenue", Tel: "0729856769"},
		{City: "Meru", Place: "Greencity Mall", Tel: "0748578516"},
	}, branches.Items)
}

func TestLoadEntriesYAML(t *testing.T) {
	repo := file.New("testdata/kb.yaml", log.NewNop())

	entries, err := repo.LoadEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, catalog.TypeInfo, entries[0].Type)
	assert.Equal(t, "42000", entries[1].Price)
	assert.Equal(t, []catalog.Branch{{City: "Eldoret", Place: "Rupas Mall", Tel: "0702198186"}}, entries[2].Items)
}

func TestLoadEntriesErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing file", path: "testdata/does_not_exist.json", want: catalog.ErrKnowledgeBaseRead},
		{name: "broken json", path: "testdata/broken.json", want: catalog.ErrKnowledgeBaseParse},
		{name: "top level not a list", path: "testdata/not_list.json", want: catalog.ErrKnowledgeBaseParse},
		{name: "unknown extension", path: "testdata/kb.csv", want: catalog.ErrUnsupportedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := file.New(tc.path, log.NewNop()).LoadEntries(context.Background())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadedEntriesBuildIndex(t *testing.T) {
	entries, err := file.New("testdata/kb.json", log.NewNop()).LoadEntries(context.Background())
	require.NoError(t, err)

	idx := catalog.NewIndex(entries)

	products := idx.Products()
	require.Len(t, products, 2, "the url-less lamp is not a product")
	assert.Equal(t, "Oslo Sofa", products[0].Name)
	assert.Equal(t, "Nordic Dining Table", products[1].Name)

	assert.Equal(t, []string{"dining", "home decor", "living room"}, idx.Categories())

	info, ok := idx.Info()
	require.True(t, ok)
	assert.Equal(t, "About Us", info.Name)
}
