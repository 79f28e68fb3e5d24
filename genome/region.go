package genome

import (
	"fmt"
	"math/rand"
)

// RegionKind tags the biological flavor of a region.
type RegionKind int

const (
	Coding RegionKind = iota
	NonCoding
	Regulatory
	Repeat
)

func (k RegionKind) String() string {
	switch k {
	case Coding:
		return "coding"
	case NonCoding:
		return "non_coding"
	case Regulatory:
		return "regulatory"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// Strand marks which strand of the duplex carries a region's feature.
type Strand int

const (
	Plus Strand = iota
	Minus
)

func (st Strand) String() string {
	if st == Minus {
		return "-"
	}
	return "+"
}

// CodingMeta is annotation carried only by coding regions.
type CodingMeta struct {
	// ReadingFrame is 1..3 on the plus strand, -1..-3 on the minus strand.
	ReadingFrame int8
}

// RegulatoryMeta is annotation carried only by regulatory regions.
type RegulatoryMeta struct {
	// Accessibility is the chromatin openness of the span, 0.0-1.0.
	Accessibility float64
}

// Region is one contiguous span of the generated sequence. Bounds, kind
// and composition target are fixed at planning time; the running
// counters advance while the region is active and freeze once it is
// exhausted.
type Region struct {
	Start  int
	Length int
	Kind   RegionKind
	Strand Strand

	TargetGC float64 // target GC fraction for the span

	GCCount int // G/C bases emitted so far
	Emitted int // total bases emitted so far, never above Length

	Coding     *CodingMeta     // non-nil only when Kind == Coding
	Regulatory *RegulatoryMeta // non-nil only when Kind == Regulatory
}

// RunningGC returns the realized GC fraction of the bases emitted so
// far, defined as 0 before the first base.
func (r *Region) RunningGC() float64 {
	if r.Emitted == 0 {
		return 0
	}
	return float64(r.GCCount) / float64(r.Emitted)
}

// End returns the exclusive end offset of the region.
func (r *Region) End() int { return r.Start + r.Length }

// KindProfile weights the stochastic choice of the next region's kind.
// Weights need not sum to 1; they are normalized by their sum on draw.
type KindProfile map[RegionKind]float64

// DefaultProfile is the even coding/non-coding split of the plain model.
func DefaultProfile() KindProfile {
	return KindProfile{Coding: 0.5, NonCoding: 0.5}
}

// ExtendedProfile mixes regulatory and repeat spans into the sequence.
func ExtendedProfile() KindProfile {
	return KindProfile{Coding: 0.35, NonCoding: 0.35, Regulatory: 0.15, Repeat: 0.15}
}

// kindOrder fixes the cumulative walk order so identical seeds replay
// identically; map iteration order would not.
var kindOrder = [4]RegionKind{Coding, NonCoding, Regulatory, Repeat}

// draw picks a kind from the cumulative weights with one uniform draw.
// The last weighted kind wins on floating-point shortfall.
func (p KindProfile) draw(rng *rand.Rand) RegionKind {
	sum := 0.0
	for _, k := range kindOrder {
		sum += p[k]
	}
	if sum <= 0 {
		return NonCoding
	}
	r := rng.Float64() * sum
	acc := 0.0
	last := NonCoding
	for _, k := range kindOrder {
		if p[k] <= 0 {
			continue
		}
		acc += p[k]
		last = k
		if r < acc {
			return k
		}
	}
	return last
}

// gcBand returns the inclusive target-GC band for a region kind. Coding
// spans lean GC-rich, repeats AT-rich, non-coding sits in between on the
// AT side and regulatory on the GC side.
func gcBand(kind RegionKind) (lo, hi float64) {
	switch kind {
	case Coding:
		return 0.55, 0.65
	case Regulatory:
		return 0.45, 0.60
	case Repeat:
		return 0.30, 0.40
	}
	return 0.35, 0.45 // NonCoding
}

// PlanRegion decides the bounds, kind and composition target of the
// next region given how much sequence exists already. The drawn length
// never exceeds the remaining budget, and when the leftover after this
// region would be smaller than opts.MinRegionLen the region absorbs the
// whole remainder, so the final region always lands exactly on total.
// All entropy comes from the passed rng; the planner keeps no state of
// its own.
func PlanRegion(generated, total int, opts Options, rng *rand.Rand) (Region, error) {
	if total < MinGenomeLength {
		return Region{}, fmt.Errorf("%w: requested %d, minimum %d", ErrInvalidConfiguration, total, MinGenomeLength)
	}
	remaining := total - generated
	if remaining <= 0 {
		return Region{}, fmt.Errorf("%w: no budget left at offset %d of %d", ErrInvalidRegion, generated, total)
	}

	kind := opts.Profile.draw(rng)
	lo, hi := gcBand(kind)
	target := lo + rng.Float64()*(hi-lo)

	length := opts.MinRegionLen + rng.Intn(opts.MaxRegionLen-opts.MinRegionLen+1)
	if length > remaining {
		length = remaining
	}
	if remaining-length < opts.MinRegionLen { // leftover too small for one more region
		length = remaining
	}

	region := Region{
		Start:    generated,
		Length:   length,
		Kind:     kind,
		TargetGC: target,
	}
	if rng.Float64() < 0.5 {
		region.Strand = Minus
	}

	switch kind {
	case Coding:
		frame := int8(1 + rng.Intn(3))
		if region.Strand == Minus {
			frame = -frame
		}
		region.Coding = &CodingMeta{ReadingFrame: frame}
	case Regulatory:
		region.Regulatory = &RegulatoryMeta{Accessibility: rng.Float64()}
	}
	return region, nil
}
