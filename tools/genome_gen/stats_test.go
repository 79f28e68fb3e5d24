package genome_gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genome_forge_go/genome"
)

func TestComputeStatsPartition(t *testing.T) {
	seq, err := genome.NewGenerator(genome.Options{Seed: 3, Profile: genome.ExtendedProfile()}).Generate(5000)
	require.NoError(t, err)

	stats := ComputeStats(seq)
	assert.Equal(t, 5000, stats.Length)
	assert.Equal(t, len(seq.Regions), stats.RegionCount)
	assert.Equal(t, 5000, stats.CountA+stats.CountT+stats.CountG+stats.CountC)
	assert.InDelta(t, seq.GCContent()*100, stats.GCContent, 1e-9)

	totalRegions, totalBases := 0, 0
	for _, ks := range stats.Kinds {
		totalRegions += ks.Regions
		totalBases += ks.Bases
		assert.GreaterOrEqual(t, ks.MeanGC, 0.0)
		assert.LessOrEqual(t, ks.MeanGC, 100.0)
	}
	assert.Equal(t, stats.RegionCount, totalRegions)
	assert.Equal(t, stats.Length, totalBases)
}

func TestComputeStatsKindAggregation(t *testing.T) {
	// Two hand-built coding regions with known counters.
	seq := &genome.Sequence{
		Regions: []genome.Region{
			{Start: 0, Length: 4, Kind: genome.Coding, TargetGC: 0.5, GCCount: 2, Emitted: 4},
			{Start: 4, Length: 4, Kind: genome.Coding, TargetGC: 0.7, GCCount: 4, Emitted: 4},
		},
	}
	for _, sym := range "ATGCGGCC" {
		seq.Bases = append(seq.Bases, genome.Base{Symbol: byte(sym)})
	}

	stats := ComputeStats(seq)
	require.Len(t, stats.Kinds, 1)

	ks := stats.Kinds[0]
	assert.Equal(t, genome.Coding, ks.Kind)
	assert.Equal(t, 2, ks.Regions)
	assert.Equal(t, 8, ks.Bases)
	assert.InDelta(t, 60.0, ks.MeanTarget, 1e-9)
	assert.InDelta(t, 75.0, ks.MeanGC, 1e-9)
	assert.InDelta(t, 35.355, ks.StdDevGC, 0.01)
}

func TestWindowedGC(t *testing.T) {
	seq := genome.FromString("GGGGGAAAAAGG")

	values := WindowedGC(seq, 5)
	require.Len(t, values, 3)
	assert.InDelta(t, 100.0, values[0], 1e-9)
	assert.InDelta(t, 0.0, values[1], 1e-9)
	// The short final window holds "GG".
	assert.InDelta(t, 100.0, values[2], 1e-9)
}
