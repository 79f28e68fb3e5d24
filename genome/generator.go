package genome

import (
	"fmt"
	"math/rand"
	"time"
)

// Options configures one generation run.
type Options struct {
	// Seed for the run's random stream. 0 seeds from the wall clock;
	// any other value replays identically across runs.
	Seed int64
	// MinRegionLen and MaxRegionLen bound the uniform region-length
	// draw. A final region may still be shorter when it absorbs the
	// tail of the budget.
	MinRegionLen int
	MaxRegionLen int
	// Profile weights the choice of each region's kind.
	Profile KindProfile
}

// DefaultOptions returns the plain coding/non-coding model with region
// lengths drawn between 50 and 500 bases.
func DefaultOptions() Options {
	return Options{
		MinRegionLen: 50,
		MaxRegionLen: 500,
		Profile:      DefaultProfile(),
	}
}

// Generator assembles sequences region by region. Each Generator owns
// exactly one random stream; concurrent runs must use separate
// Generators or interleaved draws would break seed determinism.
type Generator struct {
	opts Options
	rng  *rand.Rand
}

// NewGenerator builds a Generator from opts, filling missing fields
// from DefaultOptions and clamping MaxRegionLen up to MinRegionLen.
func NewGenerator(opts Options) *Generator {
	def := DefaultOptions()
	if opts.MinRegionLen <= 0 {
		opts.MinRegionLen = def.MinRegionLen
	}
	if opts.MaxRegionLen <= 0 {
		opts.MaxRegionLen = def.MaxRegionLen
	}
	if opts.MaxRegionLen < opts.MinRegionLen {
		opts.MaxRegionLen = opts.MinRegionLen
	}
	if opts.Profile == nil {
		opts.Profile = def.Profile
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a sequence of exactly total bases, alternating
// between planning the next region and emitting bases under its
// distribution. The active region's running GC counters advance after
// every draw. Totals below MinGenomeLength return
// ErrInvalidConfiguration; a planner or sampler contract violation
// aborts the run with no partial result. The loop performs exactly one
// base draw per emitted base, so it terminates after total draws.
func (g *Generator) Generate(total int) (*Sequence, error) {
	if total < MinGenomeLength {
		return nil, fmt.Errorf("%w: requested %d, minimum %d", ErrInvalidConfiguration, total, MinGenomeLength)
	}

	seq := &Sequence{Bases: make([]Base, 0, total)}
	generated := 0

	for generated < total {
		region, err := PlanRegion(generated, total, g.opts, g.rng)
		if err != nil {
			return nil, err
		}
		if region.Length <= 0 || generated+region.Length > total {
			return nil, fmt.Errorf("%w: planned %d bases at offset %d of %d",
				ErrInvalidRegion, region.Length, region.Start, total)
		}

		idx := len(seq.Regions)
		seq.Regions = append(seq.Regions, region)
		active := &seq.Regions[idx]

		for active.Emitted < active.Length {
			symbol, err := SampleBase(active, g.rng)
			if err != nil {
				return nil, err
			}

			// Methylation and ChromatinAccess start at their 0.0 defaults.
			seq.Bases = append(seq.Bases, Base{
				Symbol:           symbol,
				Region:           idx,
				Coding:           active.Kind == Coding,
				RepairEfficiency: 1.0,
			})

			active.Emitted++
			if symbol == 'G' || symbol == 'C' {
				active.GCCount++
			}
			generated++
		}
	}
	return seq, nil
}
