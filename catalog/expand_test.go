package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productWithStock(id int64, stock string) Product {
	meta := map[string]string{MetaSKU: "SKU"}
	if stock != "" {
		meta[MetaStock] = stock
	}
	return Product{ID: id, Title: "товар", Meta: meta}
}

func TestExpandUsesTruncatedStock(t *testing.T) {
	got := Expand([]Product{productWithStock(1, "3.0")}, true)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, "товар", p.Title)
	}
}

func TestExpandTruncatesFractionalStock(t *testing.T) {
	got := Expand([]Product{productWithStock(1, "2.9")}, true)
	assert.Len(t, got, 2)
}

func TestExpandMissingStockDefaultsToOne(t *testing.T) {
	got := Expand([]Product{productWithStock(1, "")}, true)
	assert.Len(t, got, 1)
}

func TestExpandUnparsableStockDefaultsToOne(t *testing.T) {
	got := Expand([]Product{productWithStock(1, "много")}, true)
	assert.Len(t, got, 1)
}

func TestExpandClampsNonPositiveStock(t *testing.T) {
	assert.Len(t, Expand([]Product{productWithStock(1, "0")}, true), 1)
	assert.Len(t, Expand([]Product{productWithStock(1, "-2")}, true), 1)
}

func TestExpandIgnoresStockWhenDisabled(t *testing.T) {
	got := Expand([]Product{productWithStock(1, "5")}, false)
	assert.Len(t, got, 1)
}

func TestExpandPreservesOrderAndContiguity(t *testing.T) {
	products := []Product{
		productWithStock(1, "2"),
		productWithStock(2, "1"),
		productWithStock(3, "3"),
	}
	got := Expand(products, true)
	var ids []int64
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 1, 2, 3, 3, 3}, ids)
}

func TestAttributeSlugsDistinctSorted(t *testing.T) {
	products := []Product{
		{Meta: map[string]string{"attribute_pa_color": "sinij", "attribute_pa_uzor": "goroshek"}},
		{Meta: map[string]string{"attribute_pa_color": "sinij", "_sku": "X", "attribute_pa_size": "  "}},
	}
	assert.Equal(t, []string{"goroshek", "sinij"}, AttributeSlugs(products))
}
