package label

import (
	"fmt"

	"github.com/boombuler/barcode/code128"
)

// encodeBarcode encodes value as Code 128 and returns the module
// pattern, one bool per horizontal module, true for a dark bar.
func encodeBarcode(value string) ([]bool, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encode code128 %q: %w", value, err)
	}
	bounds := bc.Bounds()
	modules := make([]bool, 0, bounds.Dx())
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		r, g, b, _ := bc.At(x, bounds.Min.Y).RGBA()
		modules = append(modules, r == 0 && g == 0 && b == 0)
	}
	return modules, nil
}
