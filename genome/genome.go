// Genome package implements region-based synthetic DNA generation.
// A sequence is partitioned into contiguous biologically-flavored regions
// (coding, non-coding, regulatory, repeat), each with its own target GC
// composition, and bases are drawn one at a time from region-specific
// weighted distributions. The package also derives the Watson-Crick
// complementary strand of an assembled sequence.
package genome

import (
	"errors"
	"strings"
)

// Sentinel errors for generation runs. All of them mark contract
// violations: a failed run returns no partial sequence and is never
// retried automatically.
var (
	// ErrInvalidConfiguration flags a requested total length below MinGenomeLength.
	ErrInvalidConfiguration = errors.New("genome: total length below minimum viable size")
	// ErrInvalidRegion flags a zero-length or over-budget region plan.
	ErrInvalidRegion = errors.New("genome: region plan violates length budget")
	// ErrInvalidDistribution flags a base probability vector that cannot be normalized.
	ErrInvalidDistribution = errors.New("genome: degenerate base probability distribution")
)

// MinGenomeLength is the smallest total length worth partitioning into
// regions. Requests below it are rejected, never clamped.
const MinGenomeLength = 100

// Base is a single generated nucleotide plus the per-base annotation
// kept for downstream mutation tooling.
type Base struct {
	Symbol byte // 'A', 'T', 'G' or 'C' ('N' appears only in complement output)
	Region int  // index into the owning Sequence's region ledger, -1 if none

	Coding           bool    // base lies inside a coding region
	RepairEfficiency float64 // 0.0-1.0, starts at 1.0
	Methylation      float64 // 0.0-1.0, starts at 0.0
	ChromatinAccess  float64 // 0.0-1.0, starts at 0.0
}

// Sequence is an append-only run of bases together with the ledger of
// regions that produced them. The ledger's lengths always partition the
// base slice exactly.
type Sequence struct {
	Bases   []Base
	Regions []Region
}

// Len returns the number of bases in the sequence.
func (s *Sequence) Len() int { return len(s.Bases) }

// String renders the bases as a plain string, annotation omitted.
func (s *Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.Bases))
	for _, b := range s.Bases {
		sb.WriteByte(b.Symbol)
	}
	return sb.String()
}

// GCContent returns the fraction of G/C bases over the whole sequence,
// 0 for an empty one.
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0
	}
	gc := 0
	for _, b := range s.Bases {
		if b.Symbol == 'G' || b.Symbol == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s.Bases))
}

// FromString builds a bare Sequence (no region ledger) from raw bases,
// normalizing to the canonical upper-case alphabet. Symbols outside
// A/T/G/C are kept as-is and pair to 'N' under Complement. Used by tools
// that load sequences from files instead of generating them.
func FromString(raw string) *Sequence {
	raw = strings.ToUpper(raw)
	seq := &Sequence{Bases: make([]Base, len(raw))}
	for i := 0; i < len(raw); i++ {
		seq.Bases[i] = Base{
			Symbol:           raw[i],
			Region:           -1,
			RepairEfficiency: 1.0,
		}
	}
	return seq
}
