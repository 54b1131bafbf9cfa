package main

import (
	"fmt"
	"os"
	"strings"
)

// readSKUFile reads a newline-separated SKU list, skipping blank lines.
func readSKUFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read SKU file: %w", err)
	}
	var skus []string
	for _, line := range strings.Split(string(data), "\n") {
		if sku := strings.TrimSpace(line); sku != "" {
			skus = append(skus, sku)
		}
	}
	return skus, nil
}
