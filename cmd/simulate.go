package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"gene_scout_go/ran_dna_gen"
)

var (
	simOpts  = ran_dna_gen.DefaultOptions()
	simFasta string
	simGFF   string
	simGzip  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Write a synthetic genome with planted genes and its GFF annotation",
	Long: `Write a synthetic genome with planted genes and its GFF annotation.

Intergenic DNA is drawn with the requested GC bias; each planted gene is ATG,
a run of codons with a strand-asymmetric codon usage, and a stop codon. The
output pair can be fed straight into "evaluate".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func() error {
			g, err := ran_dna_gen.Generate(simOpts)
			if err != nil {
				return err
			}
			if err := ran_dna_gen.WriteFile(simFasta, simGzip, g.WriteFasta); err != nil {
				return err
			}
			log.Printf("wrote %d bp to %s", len(g.Sequence), simFasta)
			if simGFF == "" {
				return nil
			}
			if err := ran_dna_gen.WriteFile(simGFF, false, g.WriteGFF); err != nil {
				return err
			}
			log.Printf("wrote %d planted genes to %s", len(g.Genes), simGFF)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	f := simulateCmd.Flags()
	f.StringVar(&simFasta, "fasta-out", "", "output FASTA file")
	f.StringVar(&simGFF, "gff-out", "", "output GFF annotation of the planted genes")
	f.BoolVar(&simGzip, "gzip", false, "gzip the FASTA output")
	f.StringVar(&simOpts.Name, "name", simOpts.Name, "sequence name (FASTA header)")
	f.Float64Var(&simOpts.GCBias, "gc-bias", simOpts.GCBias, "GC fraction of intergenic DNA (0.0-0.99)")
	f.IntVar(&simOpts.Genes, "genes", simOpts.Genes, "number of planted genes")
	f.IntVar(&simOpts.MinCodons, "min-codons", simOpts.MinCodons, "minimum codons per gene")
	f.IntVar(&simOpts.MaxCodons, "max-codons", simOpts.MaxCodons, "maximum codons per gene")
	f.IntVar(&simOpts.MinSpacer, "min-spacer", simOpts.MinSpacer, "minimum intergenic length")
	f.IntVar(&simOpts.MaxSpacer, "max-spacer", simOpts.MaxSpacer, "maximum intergenic length")
	f.Int64Var(&simOpts.Seed, "seed", simOpts.Seed, "seed for the random generator")
	simulateCmd.MarkFlagRequired("fasta-out")
}
