package genome_gen

import (
	"gonum.org/v1/gonum/stat"

	"genome_forge_go/genome"
)

// KindStats aggregates realized composition over every region of one kind.
type KindStats struct {
	Kind       genome.RegionKind
	Regions    int
	Bases      int
	MeanTarget float64 // mean target GC across the kind's regions, percent
	MeanGC     float64 // mean realized GC, percent
	StdDevGC   float64 // stddev of realized GC, percent
}

// GenomeStats summarizes one generated sequence for the HTML report.
type GenomeStats struct {
	Length      int
	RegionCount int
	GCContent   float64 // whole-sequence GC, percent
	CountA      int
	CountT      int
	CountG      int
	CountC      int
	Kinds       []KindStats
}

// statsKindOrder fixes the report row order.
var statsKindOrder = [4]genome.RegionKind{
	genome.Coding, genome.NonCoding, genome.Regulatory, genome.Repeat,
}

// ComputeStats runs the per-kind aggregation over a generated sequence.
func ComputeStats(seq *genome.Sequence) GenomeStats {
	s := GenomeStats{
		Length:      seq.Len(),
		RegionCount: len(seq.Regions),
		GCContent:   seq.GCContent() * 100,
	}

	for _, b := range seq.Bases {
		switch b.Symbol {
		case 'A':
			s.CountA++
		case 'T':
			s.CountT++
		case 'G':
			s.CountG++
		case 'C':
			s.CountC++
		}
	}

	realized := map[genome.RegionKind][]float64{}
	targets := map[genome.RegionKind][]float64{}
	bases := map[genome.RegionKind]int{}
	for _, r := range seq.Regions {
		realized[r.Kind] = append(realized[r.Kind], r.RunningGC()*100)
		targets[r.Kind] = append(targets[r.Kind], r.TargetGC*100)
		bases[r.Kind] += r.Length
	}

	for _, kind := range statsKindOrder {
		values := realized[kind]
		if len(values) == 0 {
			continue
		}
		ks := KindStats{
			Kind:       kind,
			Regions:    len(values),
			Bases:      bases[kind],
			MeanTarget: stat.Mean(targets[kind], nil),
			MeanGC:     stat.Mean(values, nil),
		}
		if len(values) > 1 { // sample stddev needs two points
			ks.StdDevGC = stat.StdDev(values, nil)
		}
		s.Kinds = append(s.Kinds, ks)
	}
	return s
}

// WindowedGC returns the GC percentage of each fixed-width window across
// the sequence. The final window may be shorter than `window`.
func WindowedGC(seq *genome.Sequence, window int) []float64 {
	if window < 1 {
		window = 100
	}
	var values []float64
	for start := 0; start < seq.Len(); start += window {
		end := start + window
		if end > seq.Len() {
			end = seq.Len()
		}
		gc := 0
		for _, b := range seq.Bases[start:end] {
			if b.Symbol == 'G' || b.Symbol == 'C' {
				gc++
			}
		}
		values = append(values, float64(gc)/float64(end-start)*100)
	}
	return values
}
