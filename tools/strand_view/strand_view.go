package strand_view

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"genome_forge_go/genome"
	"genome_forge_go/utils"
)

// RenderDuplex formats the paired-strand view of a sequence and its
// complement, one base pair per line, starting at offset and showing at
// most limit pairs (0 shows everything).
func RenderDuplex(id string, forward string, reverse string, offset int, limit int) (string, error) {
	if len(forward) != len(reverse) {
		return "", fmt.Errorf("strand lengths differ: %d vs %d", len(forward), len(reverse))
	}
	if len(forward) == 0 {
		return "", fmt.Errorf("empty sequence")
	}
	if offset < 0 || offset >= len(forward) {
		return "", fmt.Errorf("offset %d outside sequence of length %d", offset, len(forward))
	}

	end := len(forward)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("=== Double Helix Representation: %s ===\n", id))
	out.WriteString("5' -> 3' | 3' <- 5'\n")
	for i := offset; i < end; i++ {
		out.WriteString(fmt.Sprintf("%c - %c\n", forward[i], reverse[i]))
	}
	out.WriteString(fmt.Sprintf("Showing bases %d-%d of %d\n", offset+1, end, len(forward)))
	return out.String(), nil
}

func Run(args []string) {

	fs := flag.NewFlagSet("strand_view", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Input FASTA file (plain or gzipped)")
	outFile := fs.String("out_file", "", "Output file (default prints to console)")
	limit := fs.Int("limit", 0, "Maximum number of base pairs to print (0 = all)")
	offset := fs.Int("offset", 0, "Base offset to start printing from")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)												// E.g., expected int by recieved str
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *inFile == "" {
		fmt.Println("Error: in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	id, raw, err := common.FirstRecord(*inFile)
	if err != nil {
		fmt.Println("Failed to read FASTA:", err)
		os.Exit(1)
	}

	seq := genome.FromString(raw)
	comp := genome.Complement(seq)

	view, err := RenderDuplex(id, seq.String(), comp.String(), *offset, *limit)
	if err != nil {
		fmt.Println("Failed to render strands:", err)
		os.Exit(1)
	}

	if *outFile == "" {
		fmt.Print(view)
		return
	}

	if err := common.EnsureDir(*outFile); err != nil {
		fmt.Println("Failed to write output:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outFile, []byte(view), 0644); err != nil {
		fmt.Println("Error writing to file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote strand view to %s\n", *outFile)
}
