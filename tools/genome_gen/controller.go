package genome_gen

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"genome_forge_go/genome"
	"genome_forge_go/utils"
)

func Run(args []string) {

	fs := flag.NewFlagSet("genome_gen", flag.ExitOnError) 		// Isolated flag set specifically for "genome_gen" subcommand

	length := fs.Int("length", 10000, "Total genome length in bases")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	name := fs.String("name", "synthetic_genome", "Sequence name (FASTA header)")
	outFile := fs.String("out_file", "results/genome", "Output path prefix")
	rtfOut := fs.Bool("rtf", false, "Write color-coded RTF document")
	fastaOut := fs.Bool("fasta", false, "Write FASTA file")
	gzipOut := fs.Bool("gzip", false, "Compress FASTA output using gzip (.gz)")
	htmlOut := fs.Bool("html", false, "Write HTML composition report")
	compOut := fs.Bool("complement", false, "Also write the complementary strand as FASTA")
	wrap := fs.Int("wrap", 60, "FASTA line wrap width")
	extended := fs.Bool("extended", false, "Mix regulatory and repeat regions into the genome")
	minRegion := fs.Int("min_region", 50, "Minimum region length")
	maxRegion := fs.Int("max_region", 500, "Maximum region length")

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

	if *minRegion < 1 || *maxRegion < *minRegion {
		fmt.Println("Error: region bounds must satisfy 1 <= min_region <= max_region")
		os.Exit(1)
	}
	if *gzipOut && !*fastaOut && !*compOut {
		fmt.Println("Error: -gzip applies to FASTA output. Add -fasta or -complement.")
		os.Exit(1)
	}

	// The original tool's default artifact is the colored RTF document.
	if !*rtfOut && !*fastaOut && !*htmlOut && !*compOut {
		*rtfOut = true
	}

	profile := genome.DefaultProfile()
	if *extended {
		profile = genome.ExtendedProfile()
	}

	gen := genome.NewGenerator(genome.Options{
		Seed:         *seed,
		MinRegionLen: *minRegion,
		MaxRegionLen: *maxRegion,
		Profile:      profile,
	})

	seq, err := gen.Generate(*length)
	if err != nil {
		fmt.Println("Failed to generate genome:", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d bases across %d regions (GC %.2f%%)\n",
		seq.Len(), len(seq.Regions), seq.GCContent()*100)

	// Export failures are recoverable: the sequence is already built, so
	// report the failure and keep writing the remaining artifacts.
	if *rtfOut {
		path := *outFile + ".rtf"
		if err := WriteRTF(path, seq); err != nil {
			fmt.Println("Failed to write RTF:", err)
		} else {
			fmt.Printf("Wrote colored sequence to %s\n", path)
		}
	}

	if *fastaOut {
		written, err := common.WriteFasta(*outFile+".fasta", *name, seq.String(), *wrap, *gzipOut)
		if err != nil {
			fmt.Println("Failed to write FASTA:", err)
		} else {
			fmt.Printf("Wrote sequence to %s\n", written)
		}
	}

	if *compOut {
		comp := genome.Complement(seq)
		written, err := common.WriteFasta(*outFile+"_complement.fasta", *name+"_complement", comp.String(), *wrap, *gzipOut)
		if err != nil {
			fmt.Println("Failed to write complement FASTA:", err)
		} else {
			fmt.Printf("Wrote complementary strand to %s\n", written)
		}
	}

	if *htmlOut {
		stats := ComputeStats(seq)

		var svgWindow, svgRegions, svgDist string

		var wg sync.WaitGroup
		wg.Add(3) // Number of concurrent graphs

		go func() {
			defer wg.Done()
			windows := WindowedGC(seq, 100)
			if s, err := GenerateWindowedGCPlot(windows, 100); err == nil {
				svgWindow = s
			} else {
				fmt.Println("Failed to generate windowed GC plot:", err)
				svgWindow = "<p>Graph unavailable</p>"
			}
		}()

		go func() {
			defer wg.Done()
			if s, err := GenerateRegionGCPlot(seq.Regions); err == nil {
				svgRegions = s
			} else {
				fmt.Println("Failed to generate region GC plot:", err)
				svgRegions = "<p>Graph unavailable</p>"
			}
		}()

		go func() {
			defer wg.Done()
			gcValues := make([]float64, len(seq.Regions))
			for i, r := range seq.Regions {
				gcValues[i] = r.RunningGC() * 100
			}
			if s, err := GenerateGCDistributionPlot(gcValues); err == nil {
				svgDist = s
			} else {
				fmt.Println("Failed to generate GC distribution plot:", err)
				svgDist = "<p>Graph unavailable</p>"
			}
		}()

		wg.Wait()

		if err := WriteHTMLReport(*outFile+"_report", stats, svgWindow, svgRegions, svgDist); err != nil {
			fmt.Println("Failed to write HTML report:", err)
		} else {
			fmt.Printf("Wrote HTML report to %s_report.html\n", *outFile)
		}
	}
}
