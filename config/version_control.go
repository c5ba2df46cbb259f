package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v0.3.0"

	// Modular tools
	Benchmark   = "v1.0.0"
	ORF_Finder  = "v2.0.0" // frame scan between stop codons
	Kmer_Counts = "v2.0.0"
	Markov      = "v0.3.0"
	Evaluate    = "v0.2.0"
)
