package main

import (
	"fmt"
	"os"
	"strings"

	"genome_forge_go/benchmark"
	version_control "genome_forge_go/config"
	"genome_forge_go/tools/genome_gen"
	"genome_forge_go/tools/sanity_check"
	"genome_forge_go/tools/strand_view"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Genome Forge - Custom Help Menu
Usage:
  genome_forge <tool> [options]

Tools:
  genome_gen		Generate a region-structured synthetic genome
  strand_view		Base-paired view of a sequence and its complement
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Genome Forge - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tGenome Forge:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tGenome Generator:\t%s\n", version_control.Genome_Gen)
	fmt.Printf("\tStrand View:\t\t%s\n", version_control.Strand_View)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "genome_gen":
			genome_gen.Run(cleanedArgs)
		case "strand_view":
			strand_view.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("genome_forge %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
