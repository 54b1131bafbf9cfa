package catalog

import (
	"strconv"
	"strings"
)

// Expand replicates each product by the number of labels it needs,
// preserving product order and keeping copies of one product contiguous.
// With useStockQuantity false every product contributes exactly one copy.
func Expand(products []Product, useStockQuantity bool) []Product {
	expanded := make([]Product, 0, len(products))
	for _, p := range products {
		n := labelQuantity(p, useStockQuantity)
		for i := 0; i < n; i++ {
			expanded = append(expanded, p)
		}
	}
	return expanded
}

// labelQuantity reads the stock meta field as a float and truncates it.
// Missing, empty or unparsable stock defaults to one label; values below
// one are clamped to one so a product on the list always gets a label.
func labelQuantity(p Product, useStockQuantity bool) int {
	if !useStockQuantity {
		return 1
	}
	raw := strings.TrimSpace(p.Meta[MetaStock])
	if raw == "" {
		return 1
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 1
	}
	n := int(f)
	if n < 1 {
		return 1
	}
	return n
}
