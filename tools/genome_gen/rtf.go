package genome_gen

import (
	"bufio"
	"fmt"
	"os"

	"genome_forge_go/genome"
	"genome_forge_go/utils"
)

// WriteRTF exports the sequence as a color-coded RTF document with one
// color per base, Courier New, wrapped every 80 bases. Any RTF-capable
// viewer can open the result.
func WriteRTF(path string, seq *genome.Sequence) error {
	if err := common.EnsureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create RTF file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString("{\\rtf1\\ansi\\deff0\n")
	w.WriteString("{\\fonttbl{\\f0 Courier New;}}\n")
	w.WriteString("{\\colortbl;" +
		"\\red255\\green0\\blue0;" + // A -> red
		"\\red0\\green0\\blue255;" + // T -> blue
		"\\red0\\green200\\blue0;" + // G -> green
		"\\red255\\green165\\blue0;}\n") // C -> orange
	w.WriteString("\\f0\\fs20\n")
	w.WriteString("Colored DNA Sequence:\\line\n")

	const wrap = 80
	for i, b := range seq.Bases {
		switch b.Symbol {
		case 'A':
			w.WriteString("\\cf1 ")
		case 'T':
			w.WriteString("\\cf2 ")
		case 'G':
			w.WriteString("\\cf3 ")
		case 'C':
			w.WriteString("\\cf4 ")
		}
		w.WriteByte(b.Symbol)

		if (i+1)%wrap == 0 {
			w.WriteString("\\line\n")
		}
	}
	w.WriteString("\\cf0\\line\n}\n")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write RTF file: %w", err)
	}
	return nil
}
