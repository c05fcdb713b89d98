package daily

import (
	"math"
	"time"
)

// Rand is the 32-bit linear congruential generator the original data
// was generated with. State transitions replicate the source platform's
// arithmetic exactly (products stay under 2^53, the bitwise AND folds to
// a signed 32-bit value), so a seed yields the same sequence here as on
// existing installs.
type Rand struct {
	s int32
}

// NewRand seeds a generator.
func NewRand(seed int) *Rand {
	return &Rand{s: int32(uint32(uint64(int64(seed)) & 0xffffffff))}
}

// Float returns the next value in [0, 1).
func (r *Rand) Float() float64 {
	next := int64(r.s)*1664525 + 1013904223
	r.s = int32(uint32(uint64(next) & 0xffffffff))
	return float64(uint32(r.s)) / float64(0xffffffff)
}

// Intn returns a value in [0, n) using the floor of Float scaled by n.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(r.Float() * float64(n)))
}

// DateSeed derives the canonical per-day seed, yyyy*10000 + mm*100 + dd.
func DateSeed(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// LegacyVerseIndex is the older single-daily-verse selector: the date
// seed run through a multiplicative hash, truncated to 32 bits the way
// the source platform's bitwise-or-zero does (including the float
// rounding its double-precision multiply introduces). It deliberately
// disagrees with the seeding VerseOfDay uses; existing installs depend
// on both sequences.
func LegacyVerseIndex(t time.Time, totalVerses int) int {
	if totalVerses <= 0 {
		return 0
	}
	product := float64(DateSeed(t)) * 2654435761
	h := int64(int32(uint32(uint64(math.Trunc(product)) & 0xffffffff)))
	if h < 0 {
		h = -h
	}
	return int(h % int64(totalVerses))
}
