package datagen

import (
	"math/rand"
	"testing"
	"time"

	"cosmossdk.io/math"
)

// AddRandomSeedsToFuzzer adds num time based seeds to the corpus of f.
func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	for i := uint(0); i < num; i++ {
		f.Add(r.Int63())
	}
}

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	bz := make([]byte, length)
	r.Read(bz)
	return bz
}

func OneInN(r *rand.Rand, n int) bool {
	return RandomInt(r, n) == 0
}

func RandomInt(r *rand.Rand, rng int) uint64 {
	return uint64(r.Intn(rng))
}

func RandomMathInt(r *rand.Rand, rng int) math.Int {
	return math.NewIntFromUint64(RandomInt(r, rng))
}

// RandomInRange returns a random integer in the range [min, max).
func RandomInRange(r *rand.Rand, min, max int) int {
	return r.Intn(max-min) + min
}

// RandomTokenAmount returns a random amount of whole tokens in [1, maxTokens]
// expressed in base units of 18 decimals.
func RandomTokenAmount(r *rand.Rand, maxTokens int) math.Int {
	return math.NewInt(int64(RandomInRange(r, 1, maxTokens+1))).Mul(math.NewInt(1e18))
}
