package genome

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateExactLength(t *testing.T) {
	g := NewGenerator(Options{Seed: 42})

	seq, err := g.Generate(10000)
	require.NoError(t, err)
	assert.Equal(t, 10000, seq.Len())
	assert.Len(t, seq.String(), 10000)
}

func TestGenerateLedgerPartitionsSequence(t *testing.T) {
	g := NewGenerator(Options{Seed: 42})
	seq, err := g.Generate(10000)
	require.NoError(t, err)
	require.NotEmpty(t, seq.Regions)

	offset := 0
	for i, region := range seq.Regions {
		assert.Equal(t, offset, region.Start, "region %d", i)
		assert.Positive(t, region.Length, "region %d", i)
		assert.Equal(t, region.Length, region.Emitted, "region %d", i)

		// Recount GC over the span and match the running counter.
		gc := 0
		for _, b := range seq.Bases[region.Start:region.End()] {
			if b.Symbol == 'G' || b.Symbol == 'C' {
				gc++
			}
			assert.Equal(t, i, b.Region)
			assert.Equal(t, region.Kind == Coding, b.Coding)
			assert.Equal(t, 1.0, b.RepairEfficiency)
		}
		assert.Equal(t, gc, region.GCCount, "region %d", i)

		offset = region.End()
	}
	assert.Equal(t, seq.Len(), offset)
}

func TestGenerateDeterministicBySeed(t *testing.T) {
	first, err := NewGenerator(Options{Seed: 1234}).Generate(5000)
	require.NoError(t, err)
	second, err := NewGenerator(Options{Seed: 1234}).Generate(5000)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.Regions, second.Regions)

	other, err := NewGenerator(Options{Seed: 1235}).Generate(5000)
	require.NoError(t, err)
	assert.NotEqual(t, first.String(), other.String())
}

func TestGenerateMinimumViableLength(t *testing.T) {
	seq, err := NewGenerator(Options{Seed: 9}).Generate(MinGenomeLength)
	require.NoError(t, err)

	assert.Equal(t, MinGenomeLength, seq.Len())
	// Default bounds cannot split 100 bases without stranding a short
	// tail, so the plan collapses to a single absorbing region.
	require.Len(t, seq.Regions, 1)
	assert.Equal(t, MinGenomeLength, seq.Regions[0].Length)
}

func TestGenerateRejectsShortTotal(t *testing.T) {
	seq, err := NewGenerator(Options{Seed: 9}).Generate(MinGenomeLength - 1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, seq)
}

func TestGenerateRegionGCTracksTarget(t *testing.T) {
	g := NewGenerator(Options{Seed: 1234})
	seq, err := g.Generate(20000)
	require.NoError(t, err)

	var sumDev float64
	for _, region := range seq.Regions {
		dev := math.Abs(region.RunningGC() - region.TargetGC)
		sumDev += dev
		assert.GreaterOrEqual(t, region.RunningGC(), 0.0)
		assert.LessOrEqual(t, region.RunningGC(), 1.0)
		if region.Length >= 300 {
			assert.Less(t, dev, 0.12, "region at %d, target %v", region.Start, region.TargetGC)
		}
	}
	assert.Less(t, sumDev/float64(len(seq.Regions)), 0.05)
}

func TestGenerateExtendedProfileKinds(t *testing.T) {
	g := NewGenerator(Options{Seed: 7, Profile: ExtendedProfile()})
	seq, err := g.Generate(50000)
	require.NoError(t, err)

	seen := map[RegionKind]bool{}
	for _, region := range seq.Regions {
		seen[region.Kind] = true
	}
	assert.True(t, seen[Coding] && seen[NonCoding] && seen[Regulatory] && seen[Repeat],
		"kinds seen: %v", seen)
}

func TestNewGeneratorFillsDefaults(t *testing.T) {
	g := NewGenerator(Options{Seed: 1})
	assert.Equal(t, 50, g.opts.MinRegionLen)
	assert.Equal(t, 500, g.opts.MaxRegionLen)
	assert.NotNil(t, g.opts.Profile)

	// Inverted bounds collapse to the minimum instead of panicking.
	g = NewGenerator(Options{Seed: 1, MinRegionLen: 80, MaxRegionLen: 30})
	assert.Equal(t, 80, g.opts.MinRegionLen)
	assert.Equal(t, 80, g.opts.MaxRegionLen)
}

func TestGenerateAlphabetIsUpperCase(t *testing.T) {
	seq, err := NewGenerator(Options{Seed: 99}).Generate(2000)
	require.NoError(t, err)

	for _, b := range seq.Bases {
		switch b.Symbol {
		case 'A', 'T', 'G', 'C':
		default:
			t.Fatalf("unexpected symbol %q", b.Symbol)
		}
	}
}
