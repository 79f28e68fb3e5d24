package genome

import (
	"fmt"
	"math"
	"math/rand"
)

// Alphabet is the canonical upper-case base alphabet in sampler order.
// Probability vectors and the cumulative draw both follow this order.
var Alphabet = [4]byte{'A', 'T', 'G', 'C'}

// BaseProbabilities derives the 4-way base distribution for a region,
// in Alphabet order. The GC mass is split evenly between G and C and
// the AT mass evenly between A and T: composition, not any individual
// base, is the controlled variable. The vector is normalized by its own
// sum before use so the cumulative walk in SampleBase always covers
// [0,1) exactly.
func BaseProbabilities(region *Region) ([4]float64, error) {
	gc := region.TargetGC
	at := 1.0 - gc
	probs := [4]float64{at / 2, at / 2, gc / 2, gc / 2}

	sum := 0.0
	for _, p := range probs {
		if math.IsNaN(p) || p < 0 {
			return [4]float64{}, fmt.Errorf("%w: probability %v from target GC %v", ErrInvalidDistribution, p, gc)
		}
		sum += p
	}
	if sum <= 0 || math.IsNaN(sum) {
		return [4]float64{}, fmt.Errorf("%w: probabilities sum to %v", ErrInvalidDistribution, sum)
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// SampleBase draws one base for the region: a single uniform draw in
// [0,1) walked through the cumulative distribution A -> T -> G -> C.
// The rightmost bucket absorbs any floating-point shortfall, so every
// call yields exactly one base; there is no retry or rejection.
func SampleBase(region *Region, rng *rand.Rand) (byte, error) {
	probs, err := BaseProbabilities(region)
	if err != nil {
		return 0, err
	}

	r := rng.Float64()
	acc := 0.0
	for i := 0; i < len(probs)-1; i++ {
		acc += probs[i]
		if r < acc {
			return Alphabet[i], nil
		}
	}
	return Alphabet[len(Alphabet)-1], nil
}
