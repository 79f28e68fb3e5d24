package sanity_check

import (
	"fmt"

	"genome_forge_go/config" // Version control file
)

// Run performs a simple sanity check to ensure Genome Forge is
// running properly printing helpful message and version number.
func Run(args []string) {
	fmt.Printf("Successfully running Genome Forge! (%s)\n", version_control.Main_version)
}
