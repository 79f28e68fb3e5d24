package genome

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planOpts() Options {
	return Options{MinRegionLen: 50, MaxRegionLen: 500, Profile: DefaultProfile()}
}

func TestPlanRegionDeterministic(t *testing.T) {
	a, err := PlanRegion(0, 10000, planOpts(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := PlanRegion(0, 10000, planOpts(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPlanRegionRespectsLengthBounds(t *testing.T) {
	opts := Options{MinRegionLen: 10, MaxRegionLen: 20, Profile: DefaultProfile()}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		region, err := PlanRegion(0, 1000, opts, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, region.Length, 10)
		assert.LessOrEqual(t, region.Length, 20)
	}
}

func TestPlanRegionTargetGCBands(t *testing.T) {
	tests := []struct {
		kind   RegionKind
		lo, hi float64
	}{
		{Coding, 0.55, 0.65},
		{NonCoding, 0.35, 0.45},
		{Regulatory, 0.45, 0.60},
		{Repeat, 0.30, 0.40},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			opts := planOpts()
			opts.Profile = KindProfile{tc.kind: 1}
			rng := rand.New(rand.NewSource(3))

			for i := 0; i < 200; i++ {
				region, err := PlanRegion(0, 10000, opts, rng)
				require.NoError(t, err)
				require.Equal(t, tc.kind, region.Kind)
				assert.GreaterOrEqual(t, region.TargetGC, tc.lo)
				assert.Less(t, region.TargetGC, tc.hi)
			}
		})
	}
}

func TestPlanRegionClampsToBudget(t *testing.T) {
	// 40 bases left, draw bounds [50,60]: the plan must shrink to fit.
	opts := Options{MinRegionLen: 50, MaxRegionLen: 60, Profile: DefaultProfile()}
	rng := rand.New(rand.NewSource(5))

	region, err := PlanRegion(960, 1000, opts, rng)
	require.NoError(t, err)
	assert.Equal(t, 960, region.Start)
	assert.Equal(t, 40, region.Length)
	assert.Equal(t, 1000, region.End())
}

func TestPlanRegionAbsorbsShortTail(t *testing.T) {
	// 70 bases left, draw bounds [50,60]: any draw would strand a
	// leftover below MinRegionLen, so the region takes all 70.
	opts := Options{MinRegionLen: 50, MaxRegionLen: 60, Profile: DefaultProfile()}
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 50; i++ {
		region, err := PlanRegion(930, 1000, opts, rng)
		require.NoError(t, err)
		assert.Equal(t, 70, region.Length)
	}
}

func TestPlanRegionRejectsShortTotal(t *testing.T) {
	_, err := PlanRegion(0, MinGenomeLength-1, planOpts(), rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPlanRegionRejectsExhaustedBudget(t *testing.T) {
	_, err := PlanRegion(1000, 1000, planOpts(), rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrInvalidRegion)
}

func TestPlanRegionKindMetadata(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	t.Run("coding frame follows strand", func(t *testing.T) {
		opts := planOpts()
		opts.Profile = KindProfile{Coding: 1}
		for i := 0; i < 100; i++ {
			region, err := PlanRegion(0, 10000, opts, rng)
			require.NoError(t, err)
			require.NotNil(t, region.Coding)
			assert.Nil(t, region.Regulatory)

			frame := region.Coding.ReadingFrame
			if region.Strand == Minus {
				assert.True(t, frame >= -3 && frame <= -1, "frame %d on minus strand", frame)
			} else {
				assert.True(t, frame >= 1 && frame <= 3, "frame %d on plus strand", frame)
			}
		}
	})

	t.Run("regulatory accessibility", func(t *testing.T) {
		opts := planOpts()
		opts.Profile = KindProfile{Regulatory: 1}
		for i := 0; i < 100; i++ {
			region, err := PlanRegion(0, 10000, opts, rng)
			require.NoError(t, err)
			require.NotNil(t, region.Regulatory)
			assert.Nil(t, region.Coding)
			assert.GreaterOrEqual(t, region.Regulatory.Accessibility, 0.0)
			assert.Less(t, region.Regulatory.Accessibility, 1.0)
		}
	})

	t.Run("plain kinds carry no metadata", func(t *testing.T) {
		opts := planOpts()
		opts.Profile = KindProfile{NonCoding: 1, Repeat: 1}
		for i := 0; i < 100; i++ {
			region, err := PlanRegion(0, 10000, opts, rng)
			require.NoError(t, err)
			assert.Nil(t, region.Coding)
			assert.Nil(t, region.Regulatory)
		}
	})
}

func TestKindProfileDrawWeights(t *testing.T) {
	profile := ExtendedProfile()
	rng := rand.New(rand.NewSource(23))

	counts := map[RegionKind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[profile.draw(rng)]++
	}

	for kind, weight := range profile {
		assert.InDelta(t, weight, float64(counts[kind])/n, 0.02, "kind %s", kind)
	}
}

func TestKindProfileDrawSkipsZeroWeight(t *testing.T) {
	profile := KindProfile{Repeat: 1}
	rng := rand.New(rand.NewSource(29))

	for i := 0; i < 200; i++ {
		assert.Equal(t, Repeat, profile.draw(rng))
	}

	// An empty profile falls back to the neutral kind.
	assert.Equal(t, NonCoding, KindProfile{}.draw(rng))
}

func TestRunningGC(t *testing.T) {
	region := Region{Length: 100}
	assert.Zero(t, region.RunningGC())

	region.Emitted = 8
	region.GCCount = 3
	assert.InDelta(t, 0.375, region.RunningGC(), 1e-12)
}

func TestRegionKindStrings(t *testing.T) {
	assert.Equal(t, "coding", Coding.String())
	assert.Equal(t, "non_coding", NonCoding.String())
	assert.Equal(t, "regulatory", Regulatory.String())
	assert.Equal(t, "repeat", Repeat.String())
	assert.Equal(t, "unknown", RegionKind(99).String())

	assert.Equal(t, "+", Plus.String())
	assert.Equal(t, "-", Minus.String())
}
