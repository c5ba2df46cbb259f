package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gene_scout_go/kmer_analyzer"
)

var (
	sortBy  string
	relFreq bool
	plusOne bool
)

var kmersCmd = &cobra.Command{
	Use:   "kmers",
	Short: "Report k-mer counts of the long ORFs (P) and their reverse complements (Q)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func() error {
			m, err := loadModel()
			if err != nil {
				return err
			}
			w, closeOut, err := output()
			if err != nil {
				return err
			}

			fg, bg := m.Foreground.Counts().Kmers, m.Background.Counts().Kmers
			size := cfg.K
			if plusOne {
				fg, bg = m.Foreground.Counts().NextKmers, m.Background.Counts().NextKmers
				size++
			}

			// every possible k-mer, observed or not, like the all-k-mer report
			rows := kmer_analyzer.Table{}
			for _, kmer := range kmer_analyzer.DefineMerPairs(size) {
				rows[kmer] = fg.Count(kmer)
			}
			fmt.Fprintln(w, "K-mer\tP_count\tQ_count\tP_relative_freq(%)")
			fgTotal := fg.Total()
			for _, e := range rows.Entries(sortBy) {
				if relFreq {
					pct := 0.0
					if fgTotal > 0 {
						pct = float64(e.Count) / float64(fgTotal) * 100
					}
					fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\n", e.Kmer, e.Count, bg.Count(e.Kmer), pct)
				} else {
					fmt.Fprintf(w, "%s\t%d\t%d\n", e.Kmer, e.Count, bg.Count(e.Kmer))
				}
			}
			return closeOut()
		})
	},
}

func init() {
	rootCmd.AddCommand(kmersCmd)

	kmersCmd.Flags().StringP("out", "o", "", "write the table to this file instead of stdout")
	kmersCmd.Flags().StringVar(&sortBy, "sort-by", "alpha", "sort output by 'alpha' or 'freq'")
	kmersCmd.Flags().BoolVar(&relFreq, "rel-freq", true, "output relative frequency (%)")
	kmersCmd.Flags().BoolVar(&plusOne, "plus-one", false, "report (k+1)-mers instead of k-mers")
}
