package bi

import (
	"math"

	"github.com/OTheDev/bi/internal/limb"
)

const wordBytes = limb.WordBits / 8

// MaxLimbs is the largest number of limbs a magnitude may hold (spec §3):
// min(floor(SizeMax/sizeof(limb)), floor(BitCountMax/W)). Go's int is
// used as both the host's size type and its large-count type (bit
// positions are also tracked as int), so both bounds are expressed in
// terms of math.MaxInt.
var MaxLimbs = func() int {
	byCapacity := math.MaxInt / wordBytes
	byBitCount := math.MaxInt / limb.WordBits
	if byCapacity < byBitCount {
		return byCapacity
	}
	return byBitCount
}()

// MaxBits is MaxLimbs * W, the largest representable bit length.
var MaxBits = MaxLimbs * limb.WordBits
