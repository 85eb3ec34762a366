// Package prettynum formats integers in the compact style used on social media
// sites: 15000 becomes "15k", 4230542 becomes "4.2M".
package prettynum

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Magnitude thresholds and their suffixes, largest first. Values below the
// smallest threshold are printed as-is, with no suffix.
var tiers = []struct {
	threshold uint64
	suffix    string
}{
	{1_000_000_000_000, "T"},
	{1_000_000_000, "B"},
	{1_000_000, "M"},
	{1_000, "k"},
}

// Formats a number compactly, scaling it down by powers of 1000 and appending
// a suffix letter: "534", "15k", "4.2M", "-25.6M", "36.8T".
//
// The scaled value is rounded half-up to one decimal. The decimal is dropped
// when the rounded value is whole, so 5031 comes out as "5k", never "5.0k".
//
// The suffix is picked before rounding and never bumped afterwards, so 999950
// formats as "1000k" rather than "1M". Magnitudes past the "T" threshold stay
// in the "T" tier no matter how large.
func Format[T constraints.Integer](number T) string {
	sign := ""
	magnitude := uint64(number)
	if number < 0 {
		// Negating in uint64 rather than in T means the most negative
		// value of any signed width comes out right.
		magnitude = -magnitude
		sign = "-"
	}

	if magnitude < 1_000 {
		return sign + strconv.FormatUint(magnitude, 10)
	}

	tier := tiers[len(tiers)-1]
	for _, candidate := range tiers {
		if magnitude >= candidate.threshold {
			tier = candidate
			break
		}
	}

	// Round half-up to tenths of the tier unit. Integer arithmetic only,
	// floats misround well within the 64 bit range.
	tenth := tier.threshold / 10
	tenths := magnitude / tenth
	if 2*(magnitude%tenth) >= tenth {
		tenths++
	}

	if tenths%10 == 0 {
		return sign + strconv.FormatUint(tenths/10, 10) + tier.suffix
	}

	return fmt.Sprintf("%s%d.%d%s", sign, tenths/10, tenths%10, tier.suffix)
}
