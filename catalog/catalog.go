// Package catalog reads product data from the shop database and prepares
// the per-label working list. Records are plain data; the label engine
// never talks to the database itself.
package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Meta keys with a fixed meaning in the product schema.
const (
	MetaSKU          = "_sku"
	MetaPrice        = "_price"
	MetaRegularPrice = "_regular_price"
	MetaSalePrice    = "_sale_price"
	MetaStock        = "_stock"

	attributeMetaPrefix = "attribute_"
)

// Product is one product variation joined with its parent post. Read-only
// to the label pipeline.
type Product struct {
	ID        int64
	ParentID  int64
	Title     string
	BaseTitle string // parent post title; falls back to Title when absent
	Content   string // parent free-text description
	Meta      map[string]string
}

// MetaValue returns a meta field or "" when absent.
func (p Product) MetaValue(key string) string { return p.Meta[key] }

// SKU returns the article number, or "N/A" when the variation has none.
func (p Product) SKU() string {
	if sku := p.Meta[MetaSKU]; sku != "" {
		return sku
	}
	return "N/A"
}

// Price returns the first non-empty of the price variants, or "0.00".
func (p Product) Price() string {
	for _, key := range []string{MetaPrice, MetaRegularPrice, MetaSalePrice} {
		if v := p.Meta[key]; v != "" {
			return v
		}
	}
	return "0.00"
}

// DisplayTitle returns the parent title when present, else the variation
// title.
func (p Product) DisplayTitle() string {
	if p.BaseTitle != "" {
		return p.BaseTitle
	}
	return p.Title
}

// AttributeSlugs collects the distinct non-blank attribute slug values
// across products, sorted, for a single term-label lookup.
func AttributeSlugs(products []Product) []string {
	var slugs []string
	for _, p := range products {
		for key, value := range p.Meta {
			if strings.HasPrefix(key, attributeMetaPrefix) && strings.TrimSpace(value) != "" {
				slugs = append(slugs, strings.TrimSpace(value))
			}
		}
	}
	slugs = lo.Uniq(slugs)
	sort.Strings(slugs)
	return slugs
}
