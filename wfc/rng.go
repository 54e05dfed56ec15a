// SPDX-License-Identifier: MIT

package wfc

import "math/rand"

// defaultRNGSeed is used when callers pass seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed 0 uses defaultRNGSeed; any other seed is used verbatim.
// There is no time-based seeding anywhere in the package.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly chosen index in [0, n). n must be positive.
func pick(rng *rand.Rand, n int) int {
	if n == 1 {
		return 0
	}
	return rng.Intn(n)
}
