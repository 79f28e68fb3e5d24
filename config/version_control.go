package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark    = "v1.0.0"
	Genome_Gen   = "v1.0.0"
	Strand_View  = "v1.0.0"
	Sanity_check = "v1.0.0"
)
