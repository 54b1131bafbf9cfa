package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Values at or above this are heights in centimeters, not garment sizes.
const heightThresholdCm = 56

var (
	letterPattern     = regexp.MustCompile(`[A-Za-zА-Яа-я]`)
	sizeRangePattern  = regexp.MustCompile(`^\d+\s*[-–]\s*\d+`)
)

// IsSizeValue reports whether a size-like attribute value should be labeled
// as a size rather than a height. Letter-bearing values ("M", "XL") and
// numeric ranges ("9-10") are sizes; bare integers are sizes only below the
// height threshold. Anything else is treated as height-like. This is a
// deliberate heuristic, not a guarantee.
func IsSizeValue(value string) bool {
	if letterPattern.MatchString(value) {
		return true
	}
	if sizeRangePattern.MatchString(value) {
		return true
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return n < heightThresholdCm
}
