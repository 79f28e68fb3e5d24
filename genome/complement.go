package genome

// ComplementBase returns the Watson-Crick partner of symbol. Anything
// outside the A/T/G/C alphabet maps to 'N', and 'N' maps to itself.
func ComplementBase(symbol byte) byte {
	switch symbol {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	default:
		return 'N'
	}
}

// Complement returns the complementary strand of s as a new sequence.
// Every base keeps its region index and annotations with only the
// symbol swapped, and the region ledger is deep-copied so neither
// sequence can mutate the other. Applying Complement twice restores
// the original sequence.
func Complement(s *Sequence) *Sequence {
	out := &Sequence{
		Bases:   make([]Base, len(s.Bases)),
		Regions: make([]Region, len(s.Regions)),
	}

	for i, b := range s.Bases {
		b.Symbol = ComplementBase(b.Symbol)
		out.Bases[i] = b
	}

	for i, r := range s.Regions {
		if r.Coding != nil {
			meta := *r.Coding
			r.Coding = &meta
		}
		if r.Regulatory != nil {
			meta := *r.Regulatory
			r.Regulatory = &meta
		}
		out.Regions[i] = r
	}
	return out
}
